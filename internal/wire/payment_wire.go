package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)
		r.Post("/verify", paymentHandler.VerifyPayment)
	})
}
