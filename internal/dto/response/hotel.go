package response

type PriceQuoteResponse struct {
	HotelID         string  `json:"hotelId"`
	HotelName       string  `json:"hotelName"`
	RoomType        string  `json:"roomType"`
	RoomDescription string  `json:"roomDescription"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	Rooms           int     `json:"rooms"`
	PricePerNight   float64 `json:"pricePerNight"`
	TotalPrice      float64 `json:"totalPrice"`
	AmountMinor     int64   `json:"amountMinor"`
	Currency        string  `json:"currency"`
}
