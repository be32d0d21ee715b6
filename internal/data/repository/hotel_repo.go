package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
)

//go:embed hotels.json
var hotelCatalog []byte

type HotelRepository interface {
	FindAll(ctx context.Context, destinationID string, limit, offset int) ([]*entity.Hotel, error)
	Count(ctx context.Context, destinationID string) (int64, error)
	FindByID(ctx context.Context, id string) (*entity.Hotel, error)
}

// hotelRepository serves the read-only catalog compiled into the binary.
type hotelRepository struct {
	hotels []*entity.Hotel
	byID   map[string]*entity.Hotel
	log    *zap.Logger
}

func NewHotelRepository(log *zap.Logger) (HotelRepository, error) {
	return newHotelRepositoryFromJSON(hotelCatalog, log)
}

func newHotelRepositoryFromJSON(data []byte, log *zap.Logger) (HotelRepository, error) {
	var hotels []*entity.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, fmt.Errorf("decode hotel catalog: %w", err)
	}

	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })

	byID := make(map[string]*entity.Hotel, len(hotels))
	for _, h := range hotels {
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("decode hotel catalog: duplicate hotel id %q", h.ID)
		}
		byID[h.ID] = h
	}

	log = log.With(zap.String("repository", "hotel"))
	log.Debug("Hotel catalog loaded", zap.Int("hotels", len(hotels)))

	return &hotelRepository{hotels: hotels, byID: byID, log: log}, nil
}

func (r *hotelRepository) FindAll(ctx context.Context, destinationID string, limit, offset int) ([]*entity.Hotel, error) {
	matches := r.filter(destinationID)
	if offset >= len(matches) {
		return []*entity.Hotel{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], nil
}

func (r *hotelRepository) Count(ctx context.Context, destinationID string) (int64, error) {
	return int64(len(r.filter(destinationID))), nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id string) (*entity.Hotel, error) {
	hotel, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return hotel, nil
}

func (r *hotelRepository) filter(destinationID string) []*entity.Hotel {
	if destinationID == "" {
		return r.hotels
	}
	var out []*entity.Hotel
	for _, h := range r.hotels {
		if h.DestinationID == destinationID {
			out = append(out, h)
		}
	}
	return out
}
