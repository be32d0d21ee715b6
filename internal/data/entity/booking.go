package entity

type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "pending"
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	BookingStatusConfirmed       BookingStatus = "confirmed"
)

// Guest identifies the person the stay is booked for.
type Guest struct {
	FirstName       string `db:"first_name" json:"firstName"`
	LastName        string `db:"last_name" json:"lastName"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	SpecialRequests string `db:"special_requests" json:"specialRequests"`
}

// Stay describes what was booked. Dates are YYYY-MM-DD.
type Stay struct {
	HotelID         string `db:"hotel_id" json:"hotelId"`
	HotelName       string `db:"hotel_name" json:"hotelName"`
	HotelAddress    string `db:"hotel_address" json:"hotelAddress"`
	CheckIn         string `db:"check_in" json:"checkIn"`
	CheckOut        string `db:"check_out" json:"checkOut"`
	Nights          int    `db:"nights" json:"nights"`
	Guests          int    `db:"guests" json:"guests"`
	Rooms           int    `db:"rooms" json:"rooms"`
	RoomDescription string `db:"room_description" json:"roomDescription"`
}

type Booking struct {
	Base
	Guest
	Stay
	TotalPrice       float64 `db:"total_price" json:"totalPrice"`
	PaymentReference string  `db:"payment_reference" json:"paymentReference"`
	Paid             bool    `db:"paid" json:"paid"`
}

// Status is derived from the payment fields and never stored.
func (b *Booking) Status() BookingStatus {
	switch {
	case b.Paid:
		return BookingStatusConfirmed
	case b.PaymentReference != "":
		return BookingStatusAwaitingPayment
	default:
		return BookingStatusPending
	}
}

// BookingPatch is a partial update; nil fields are left untouched.
type BookingPatch struct {
	Paid             *bool
	TotalPrice       *float64
	PaymentReference *string
}

func (p BookingPatch) IsEmpty() bool {
	return p.Paid == nil && p.TotalPrice == nil && p.PaymentReference == nil
}

// Apply copies the set fields onto b.
func (p BookingPatch) Apply(b *Booking) {
	if p.Paid != nil {
		b.Paid = *p.Paid
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.PaymentReference != nil {
		b.PaymentReference = *p.PaymentReference
	}
}
