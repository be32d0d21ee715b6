package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Booking *BookingHandler
	Payment *PaymentHandler
	Support *SupportHandler
	Hotel   *HotelHandler
	Account *AccountHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Support: NewSupportHandler(service.Support, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Account: NewAccountHandler(service.Booking, log),
	}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleServiceError maps usecase errors to HTTP responses. Anything
// unrecognised is a 500 and the detail stays in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, usecase.ErrMissingBookingReference), errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrBookingNotFound), errors.Is(err, usecase.ErrHotelNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err), zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyRegistered):
		log.Warn(operation+" failed - conflict", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrPaymentProvider):
		log.Error("Payment provider failed during "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Payment provider error")

	case errors.Is(err, usecase.ErrEmailTransport):
		log.Error("Email transport failed during "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Failed to send email")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
