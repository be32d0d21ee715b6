package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
)

// bookingMemoryRepository keeps bookings in process memory. Used for local
// development (DB_DRIVER=memory) and router tests.
type bookingMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]entity.Booking
	log      *zap.Logger
}

func NewBookingMemoryRepository(log *zap.Logger) BookingRepository {
	return &bookingMemoryRepository{
		bookings: make(map[uuid.UUID]entity.Booking),
		log:      log.With(zap.String("repository", "booking_memory")),
	}
}

func (r *bookingMemoryRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("create booking %s: %w", booking.ID, ErrDuplicateKey)
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *bookingMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingMemoryRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("update booking %s: %w", id, ErrRecordNotFound)
	}
	if !patch.IsEmpty() {
		patch.Apply(&booking)
		booking.UpdatedAt = time.Now().UTC()
		r.bookings[id] = booking
	}
	return &booking, nil
}

func (r *bookingMemoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("delete booking %s: %w", id, ErrRecordNotFound)
	}
	delete(r.bookings, id)
	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingMemoryRepository) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := r.byEmail(email)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	if offset >= len(matches) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], nil
}

func (r *bookingMemoryRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(r.byEmail(email))), nil
}

func (r *bookingMemoryRepository) byEmail(email string) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.Email == email {
			booking := b
			out = append(out, &booking)
		}
	}
	return out
}
