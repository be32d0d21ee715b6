package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type SupportHandler struct {
	service usecase.SupportService
	log     *zap.Logger
}

func NewSupportHandler(service usecase.SupportService, log *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service: service,
		log:     log.With(zap.String("handler", "support")),
	}
}

// SubmitTicket handles POST /api/support
func (h *SupportHandler) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var req request.SupportTicketRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.SubmitTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit support ticket")
		return
	}

	utils.ResponseSuccess(w, resp)
}
