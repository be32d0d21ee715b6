package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		// anyone holding the id may cancel
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
