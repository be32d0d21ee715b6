package request

type CreateCheckoutSessionRequest struct {
	// Amount is in minor currency units (cents).
	Amount       int64                `json:"amount" validate:"required,min=1"`
	HotelName    string               `json:"hotelName" validate:"max=250"`
	Email        string               `json:"email" validate:"omitempty,email"`
	BookingID    string               `json:"bookingId"`
	BookingDraft *BookingDraftRequest `json:"bookingDraft"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	BookingID string `json:"bookingId"`
}
