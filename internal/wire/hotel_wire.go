package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wireHotel(r chi.Router, hotelHandler *adaptor.HotelHandler) {
	r.Route("/api/hotels", func(r chi.Router) {
		r.Get("/", hotelHandler.ListHotels)
		r.Get("/{id}", hotelHandler.GetHotel)
		r.Get("/{id}/price", hotelHandler.QuotePrice)
	})
}
