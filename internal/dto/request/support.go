package request

type SupportTicketRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required,max=5000"`
	BookingID string `json:"bookingId" validate:"max=100"`
}
