package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// ListHotels handles GET /api/hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	hotels, err := h.service.ListHotels(r.Context(), query.Get("destinationId"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, hotels)
}

// GetHotel handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, hotel)
}

// QuotePrice handles GET /api/hotels/{id}/price
func (h *HotelHandler) QuotePrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PriceQuoteRequest{
		CheckIn:  query.Get("checkIn"),
		CheckOut: query.Get("checkOut"),
		Guests:   utils.ParseInt(query.Get("guests"), 1),
		Rooms:    utils.ParseInt(query.Get("rooms"), 1),
		RoomType: query.Get("roomType"),
	}

	quote, err := h.service.QuotePrice(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote price")
		return
	}

	utils.ResponseSuccess(w, quote)
}
