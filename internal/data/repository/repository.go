package repository

import (
	"go.uber.org/zap"

	"hotel-booking/pkg/database"
)

// Repository groups the stores the booking API depends on.
type Repository struct {
	Booking BookingRepository
	Hotel   HotelRepository
}

// NewRepository wires a booking store of any driver with the static hotel catalog.
func NewRepository(booking BookingRepository, log *zap.Logger) (*Repository, error) {
	hotels, err := NewHotelRepository(log)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Booking: booking,
		Hotel:   hotels,
	}, nil
}

// AuthRepository groups the stores the auth service depends on.
type AuthRepository struct {
	User    UserRepository
	Session SessionRepository
}

func NewAuthRepository(db database.PgxIface, log *zap.Logger) *AuthRepository {
	return &AuthRepository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
