package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

const dateLayout = "2006-01-02"

type HotelService interface {
	ListHotels(ctx context.Context, destinationID string, req *request.PaginatedRequest) (*response.PaginatedResponse[*entity.Hotel], error)
	GetHotel(ctx context.Context, hotelID string) (*entity.Hotel, error)
	QuotePrice(ctx context.Context, hotelID string, req *request.PriceQuoteRequest) (*response.PriceQuoteResponse, error)
}

type hotelService struct {
	repo repository.HotelRepository
	log  *zap.Logger
}

func NewHotelService(repo repository.HotelRepository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) ListHotels(ctx context.Context, destinationID string, req *request.PaginatedRequest) (*response.PaginatedResponse[*entity.Hotel], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	hotels, err := s.repo.FindAll(ctx, destinationID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	total, err := s.repo.Count(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	return response.NewPaginatedResponse(hotels, req.Page, req.Limit(), total), nil
}

func (s *hotelService) GetHotel(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	hotel, err := s.repo.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", hotelID, err)
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

// QuotePrice prices a stay as nights x nightly rate x rooms.
func (s *hotelService) QuotePrice(ctx context.Context, hotelID string, req *request.PriceQuoteRequest) (*response.PriceQuoteResponse, error) {
	hotel, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	checkIn, _ := time.Parse(dateLayout, req.CheckIn)
	checkOut, _ := time.Parse(dateLayout, req.CheckOut)
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, fieldError("checkOut", "Must be after checkIn")
	}

	room, ok := hotel.Room(req.RoomType)
	if !ok {
		return nil, fieldError("roomType", fmt.Sprintf("Unknown room type %q", req.RoomType))
	}
	if req.Guests > room.MaxGuests*req.Rooms {
		return nil, fieldError("guests", fmt.Sprintf("At most %d guests fit in %d %s room(s)", room.MaxGuests*req.Rooms, req.Rooms, room.Type))
	}

	total := math.Round(float64(nights)*room.PricePerNight*float64(req.Rooms)*100) / 100

	return &response.PriceQuoteResponse{
		HotelID:         hotel.ID,
		HotelName:       hotel.Name,
		RoomType:        room.Type,
		RoomDescription: room.Description,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          nights,
		Guests:          req.Guests,
		Rooms:           req.Rooms,
		PricePerNight:   room.PricePerNight,
		TotalPrice:      total,
		AmountMinor:     utils.MinorUnits(total),
		Currency:        hotel.Currency,
	}, nil
}
