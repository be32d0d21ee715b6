package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"hotel-booking/pkg/utils"
)

const (
	// MetadataBookingID carries the booking the checkout session pays for.
	MetadataBookingID = "booking_id"

	draftPrefix = "draft_"
	// Payment providers cap metadata values (Stripe: 500 chars).
	maxMetadataValue = 500
)

// BookingDraft is an unsaved booking assembled by the client. It is only
// persisted once the payment for it is verified.
type BookingDraft struct {
	Guest
	Stay
	TotalPrice float64 `json:"totalPrice"`
}

// ToMetadata flattens the draft into provider metadata keys.
func (d *BookingDraft) ToMetadata() map[string]string {
	fields := map[string]string{
		"first_name":       d.FirstName,
		"last_name":        d.LastName,
		"email":            d.Email,
		"phone":            d.Phone,
		"special_requests": d.SpecialRequests,
		"hotel_id":         d.HotelID,
		"hotel_name":       d.HotelName,
		"hotel_address":    d.HotelAddress,
		"check_in":         d.CheckIn,
		"check_out":        d.CheckOut,
		"nights":           strconv.Itoa(d.Nights),
		"guests":           strconv.Itoa(d.Guests),
		"rooms":            strconv.Itoa(d.Rooms),
		"room_description": d.RoomDescription,
		"total_price":      strconv.FormatFloat(d.TotalPrice, 'f', -1, 64),
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if v == "" {
			continue
		}
		out[draftPrefix+k] = utils.Truncate(v, maxMetadataValue)
	}
	return out
}

// BookingDraftFromMetadata rebuilds a draft from checkout metadata. The second
// return value is false when the metadata holds no draft keys.
func BookingDraftFromMetadata(md map[string]string) (*BookingDraft, bool) {
	found := false
	get := func(key string) string {
		v, ok := md[draftPrefix+key]
		if ok {
			found = true
		}
		return v
	}
	atoi := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}

	d := &BookingDraft{
		Guest: Guest{
			FirstName:       get("first_name"),
			LastName:        get("last_name"),
			Email:           get("email"),
			Phone:           get("phone"),
			SpecialRequests: get("special_requests"),
		},
		Stay: Stay{
			HotelID:         get("hotel_id"),
			HotelName:       get("hotel_name"),
			HotelAddress:    get("hotel_address"),
			CheckIn:         get("check_in"),
			CheckOut:        get("check_out"),
			Nights:          atoi("nights"),
			Guests:          atoi("guests"),
			Rooms:           atoi("rooms"),
			RoomDescription: get("room_description"),
		},
	}
	d.TotalPrice, _ = strconv.ParseFloat(get("total_price"), 64)

	return d, found
}

// ToBooking materializes the draft under a reserved id.
func (d *BookingDraft) ToBooking(id uuid.UUID, now time.Time) *Booking {
	return &Booking{
		Base:       Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Guest:      d.Guest,
		Stay:       d.Stay,
		TotalPrice: d.TotalPrice,
	}
}
