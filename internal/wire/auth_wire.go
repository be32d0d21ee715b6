package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, tokens middleware.TokenParser, log *zap.Logger) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		r.With(middleware.AuthJWT(tokens, log)).Get("/me", authHandler.Me)
	})
}
