package entity

type RoomType struct {
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	MaxGuests     int     `json:"maxGuests"`
	PricePerNight float64 `json:"pricePerNight"`
}

type Hotel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	DestinationID string     `json:"destinationId"`
	StarRating    float64    `json:"starRating"`
	Description   string     `json:"description"`
	Amenities     []string   `json:"amenities"`
	Currency      string     `json:"currency"`
	Rooms         []RoomType `json:"rooms"`
}

// Room returns the room type with the given name, or the cheapest one when
// roomType is empty.
func (h *Hotel) Room(roomType string) (*RoomType, bool) {
	var cheapest *RoomType
	for i := range h.Rooms {
		room := &h.Rooms[i]
		if roomType != "" && room.Type == roomType {
			return room, true
		}
		if cheapest == nil || room.PricePerNight < cheapest.PricePerNight {
			cheapest = room
		}
	}
	if roomType == "" && cheapest != nil {
		return cheapest, true
	}
	return nil, false
}
