package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetGuestBookings(ctx context.Context, email string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking stores the submitted fields as-is under a fresh id. Payment
// state always starts unpaid.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking := req.ToDraft().ToBooking(uuid.New(), time.Now().UTC())

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("hotel_id", booking.HotelID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// CancelBooking hard-deletes the booking. Anyone holding the id may cancel.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", id.String()),
		zap.Bool("was_paid", booking.Paid),
	)
	return nil
}

func (s *bookingService) GetGuestBookings(ctx context.Context, email string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	bookings, err := s.repo.FindByEmail(ctx, email, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings for guest: %w", err)
	}

	total, err := s.repo.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("count bookings for guest: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.Limit(), total), nil
}
