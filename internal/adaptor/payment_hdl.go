package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreateCheckoutSession handles POST /api/payments/create-checkout-session
func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCheckoutSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.CreateCheckoutSession(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create checkout session")
		return
	}

	utils.ResponseSuccess(w, session)
}

// VerifyPayment handles POST /api/payments/verify
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, result)
}
