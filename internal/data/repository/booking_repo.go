package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

var bookingColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "special_requests",
	"hotel_id", "hotel_name", "hotel_address", "check_in", "check_out",
	"nights", "guests", "rooms", "room_description",
	"total_price", "payment_reference", "paid", "created_at", "updated_at",
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, first_name, last_name, email, phone, special_requests,
		                      hotel_id, hotel_name, hotel_address, check_in, check_out,
		                      nights, guests, rooms, room_description,
		                      total_price, payment_reference, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.FirstName,
		booking.LastName,
		booking.Email,
		booking.Phone,
		booking.SpecialRequests,
		booking.HotelID,
		booking.HotelName,
		booking.HotelAddress,
		booking.CheckIn,
		booking.CheckOut,
		booking.Nights,
		booking.Guests,
		booking.Rooms,
		booking.RoomDescription,
		booking.TotalPrice,
		booking.PaymentReference,
		booking.Paid,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("create booking %s: %w", booking.ID, ErrDuplicateKey)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query, args, err := database.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find booking query: %w", err)
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}

	return booking, nil
}

// UpdateByID sets only the patched columns. Concurrent updates are last-writer-wins.
func (r *bookingRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error) {
	if patch.IsEmpty() {
		booking, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			return nil, fmt.Errorf("update booking %s: %w", id, ErrRecordNotFound)
		}
		return booking, nil
	}

	builder := database.Update("bookings").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if patch.Paid != nil {
		builder = builder.Set("paid", *patch.Paid)
	}
	if patch.TotalPrice != nil {
		builder = builder.Set("total_price", *patch.TotalPrice)
	}
	if patch.PaymentReference != nil {
		builder = builder.Set("payment_reference", *patch.PaymentReference)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update booking query: %w", err)
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update booking %s: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %s: %w", id, ErrRecordNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	query, args, err := database.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"email": email}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookings by email query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings by email",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by email limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE email = $1`, email).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by email", zap.Error(err))
		return 0, fmt.Errorf("count bookings by email: %w", err)
	}

	return count, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.FirstName,
		&b.LastName,
		&b.Email,
		&b.Phone,
		&b.SpecialRequests,
		&b.HotelID,
		&b.HotelName,
		&b.HotelAddress,
		&b.CheckIn,
		&b.CheckOut,
		&b.Nights,
		&b.Guests,
		&b.Rooms,
		&b.RoomDescription,
		&b.TotalPrice,
		&b.PaymentReference,
		&b.Paid,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
