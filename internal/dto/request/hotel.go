package request

type PriceQuoteRequest struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"min=1,max=50"`
	Rooms    int    `json:"rooms" validate:"min=1,max=20"`
	RoomType string `json:"roomType"`
}
