package response

import "hotel-booking/internal/data/entity"

// BookingResponse is the stored booking plus its derived status.
type BookingResponse struct {
	*entity.Booking
	Status entity.BookingStatus `json:"status"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type CancelBookingResponse struct {
	OK      bool `json:"ok"`
	Deleted bool `json:"deleted"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{Booking: b, Status: b.Status()}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
