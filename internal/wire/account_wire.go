package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

// wireAccount mounts routes that need an access token from the auth service.
func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler, tokens middleware.TokenParser, log *zap.Logger) {
	r.With(middleware.AuthJWT(tokens, log)).Get("/api/account/bookings", accountHandler.GetMyBookings)
}
