package request

import "hotel-booking/internal/data/entity"

// BookingDraftRequest carries the guest and stay details the client assembled.
// Unknown fields are ignored; nothing here is required.
type BookingDraftRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	SpecialRequests string  `json:"specialRequests"`
	HotelID         string  `json:"hotelId"`
	HotelName       string  `json:"hotelName"`
	HotelAddress    string  `json:"hotelAddress"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	Rooms           int     `json:"rooms"`
	RoomDescription string  `json:"roomDescription"`
	TotalPrice      float64 `json:"totalPrice"`
}

func (r BookingDraftRequest) ToDraft() *entity.BookingDraft {
	return &entity.BookingDraft{
		Guest: entity.Guest{
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			Email:           r.Email,
			Phone:           r.Phone,
			SpecialRequests: r.SpecialRequests,
		},
		Stay: entity.Stay{
			HotelID:         r.HotelID,
			HotelName:       r.HotelName,
			HotelAddress:    r.HotelAddress,
			CheckIn:         r.CheckIn,
			CheckOut:        r.CheckOut,
			Nights:          r.Nights,
			Guests:          r.Guests,
			Rooms:           r.Rooms,
			RoomDescription: r.RoomDescription,
		},
		TotalPrice: r.TotalPrice,
	}
}

type CreateBookingRequest struct {
	BookingDraftRequest
}
