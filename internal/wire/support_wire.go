package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wireSupport(r chi.Router, supportHandler *adaptor.SupportHandler) {
	r.Post("/api/support", supportHandler.SubmitTicket)
}
