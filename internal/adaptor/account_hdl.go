package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

// AccountHandler serves the signed-in guest's own data.
type AccountHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewAccountHandler(service usecase.BookingService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log.With(zap.String("handler", "account")),
	}
}

// GetMyBookings handles GET /api/account/bookings (protected)
func (h *AccountHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok || email == "" {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetGuestBookings(r.Context(), email, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get account bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}
