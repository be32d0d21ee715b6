package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    BookingStatus
	}{
		{"fresh", Booking{}, BookingStatusPending},
		{"checkout started", Booking{PaymentReference: "cs_1"}, BookingStatusAwaitingPayment},
		{"paid", Booking{PaymentReference: "pi_1", Paid: true}, BookingStatusConfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.Status())
		})
	}
}

func TestBookingPatch_Apply(t *testing.T) {
	b := &Booking{TotalPrice: 10, PaymentReference: "cs_1"}
	paid := true
	price := 125.5

	patch := BookingPatch{Paid: &paid, TotalPrice: &price}
	require.False(t, patch.IsEmpty())
	patch.Apply(b)

	assert.True(t, b.Paid)
	assert.Equal(t, 125.5, b.TotalPrice)
	assert.Equal(t, "cs_1", b.PaymentReference)
	assert.True(t, BookingPatch{}.IsEmpty())
}

func TestBookingDraft_MetadataRoundTrip(t *testing.T) {
	draft := &BookingDraft{
		Guest: Guest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		Stay: Stay{
			HotelID: "h-1", HotelName: "Grand", CheckIn: "2026-01-10", CheckOut: "2026-01-12",
			Nights: 2, Guests: 2, Rooms: 1,
		},
		TotalPrice: 240.5,
	}

	md := draft.ToMetadata()
	for k, v := range md {
		assert.True(t, strings.HasPrefix(k, "draft_"), k)
		assert.LessOrEqual(t, len(v), 500)
	}

	got, ok := BookingDraftFromMetadata(md)
	require.True(t, ok)
	assert.Equal(t, draft, got)
}

func TestBookingDraft_TruncatesLongValues(t *testing.T) {
	draft := &BookingDraft{Guest: Guest{SpecialRequests: strings.Repeat("é", 400)}}

	md := draft.ToMetadata()
	assert.LessOrEqual(t, len(md["draft_special_requests"]), 500)
}

func TestBookingDraftFromMetadata_Absent(t *testing.T) {
	_, ok := BookingDraftFromMetadata(map[string]string{MetadataBookingID: "x"})
	assert.False(t, ok)
}

func TestBookingDraft_ToBooking(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	draft := &BookingDraft{Guest: Guest{Email: "a@b.c"}, TotalPrice: 99}

	b := draft.ToBooking(id, now)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, "a@b.c", b.Email)
	assert.Equal(t, 99.0, b.TotalPrice)
	assert.False(t, b.Paid)
}

func TestHotel_Room(t *testing.T) {
	h := Hotel{Rooms: []RoomType{
		{Type: "suite", PricePerNight: 300},
		{Type: "standard", PricePerNight: 120},
	}}

	room, ok := h.Room("suite")
	require.True(t, ok)
	assert.Equal(t, 300.0, room.PricePerNight)

	room, ok = h.Room("")
	require.True(t, ok)
	assert.Equal(t, "standard", room.Type)

	_, ok = h.Room("penthouse")
	assert.False(t, ok)
}
