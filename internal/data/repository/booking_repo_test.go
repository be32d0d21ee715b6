package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
)

func newMockBookingRepo(t *testing.T) (BookingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewBookingRepository(mock, zap.NewNop()), mock
}

func sampleBooking() *entity.Booking {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Booking{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Guest: entity.Guest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "+44 20 0000"},
		Stay: entity.Stay{
			HotelID: "htl-lisbon-001", HotelName: "Tagus Riverside Hotel", HotelAddress: "Lisbon",
			CheckIn: "2026-04-01", CheckOut: "2026-04-03", Nights: 2, Guests: 2, Rooms: 1,
			RoomDescription: "Deluxe double",
		},
		TotalPrice: 330,
	}
}

func bookingRow(b *entity.Booking) *pgxmock.Rows {
	return pgxmock.NewRows(bookingColumns).AddRow(
		b.ID, b.FirstName, b.LastName, b.Email, b.Phone, b.SpecialRequests,
		b.HotelID, b.HotelName, b.HotelAddress, b.CheckIn, b.CheckOut,
		b.Nights, b.Guests, b.Rooms, b.RoomDescription,
		b.TotalPrice, b.PaymentReference, b.Paid, b.CreatedAt, b.UpdatedAt,
	)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestBookingRepository_Create(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	b := sampleBooking()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(anyArgs(len(bookingColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newMockBookingRepo(t)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(anyArgs(len(bookingColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBookingRepository_FindByID(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(b.ID).
		WillReturnRows(bookingRow(b))

	got, err := repo.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBookingRepository_FindByIDMissing(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookingRepository_UpdateByID(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	b := sampleBooking()
	b.Paid = true
	b.TotalPrice = 100
	b.PaymentReference = "pi_1"

	paid, price, ref := true, 100.0, "pi_1"
	mock.ExpectQuery(`UPDATE bookings SET updated_at = \$1, paid = \$2, total_price = \$3, payment_reference = \$4 WHERE id = \$5 RETURNING`).
		WithArgs(pgxmock.AnyArg(), paid, price, ref, b.ID).
		WillReturnRows(bookingRow(b))

	got, err := repo.UpdateByID(context.Background(), b.ID, entity.BookingPatch{
		Paid: &paid, TotalPrice: &price, PaymentReference: &ref,
	})
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, 100.0, got.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateByIDMissing(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	id := uuid.New()
	ref := "cs_1"

	mock.ExpectQuery(`UPDATE bookings SET`).
		WithArgs(pgxmock.AnyArg(), ref, id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateByID(context.Background(), id, entity.BookingPatch{PaymentReference: &ref})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestBookingRepository_DeleteByID(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteByID(context.Background(), id))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), id), ErrRecordNotFound)
}

func TestBookingRepository_FindByEmail(t *testing.T) {
	repo, mock := newMockBookingRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(`FROM bookings WHERE email = \$1 ORDER BY created_at DESC LIMIT 10 OFFSET 20`).
		WithArgs(b.Email).
		WillReturnRows(bookingRow(b))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE email = \$1`).
		WithArgs(b.Email).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))

	got, err := repo.FindByEmail(context.Background(), b.Email, 10, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	count, err := repo.CountByEmail(context.Background(), b.Email)
	require.NoError(t, err)
	assert.Equal(t, int64(21), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
