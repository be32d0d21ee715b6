package response

type CheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
	BookingID string `json:"bookingId"`
}

type VerifyPaymentResponse struct {
	OK        bool    `json:"ok"`
	Paid      bool    `json:"paid"`
	Amount    float64 `json:"amount"`
	BookingID string  `json:"bookingId,omitempty"`
}
