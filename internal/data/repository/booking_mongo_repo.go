package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
)

const bookingsCollection = "bookings"

// bookingDocument is the stored shape; _id is the booking UUID as a string.
type bookingDocument struct {
	ID               string    `bson:"_id"`
	FirstName        string    `bson:"first_name"`
	LastName         string    `bson:"last_name"`
	Email            string    `bson:"email"`
	Phone            string    `bson:"phone"`
	SpecialRequests  string    `bson:"special_requests"`
	HotelID          string    `bson:"hotel_id"`
	HotelName        string    `bson:"hotel_name"`
	HotelAddress     string    `bson:"hotel_address"`
	CheckIn          string    `bson:"check_in"`
	CheckOut         string    `bson:"check_out"`
	Nights           int       `bson:"nights"`
	Guests           int       `bson:"guests"`
	Rooms            int       `bson:"rooms"`
	RoomDescription  string    `bson:"room_description"`
	TotalPrice       float64   `bson:"total_price"`
	PaymentReference string    `bson:"payment_reference"`
	Paid             bool      `bson:"paid"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}

func toBookingDocument(b *entity.Booking) bookingDocument {
	return bookingDocument{
		ID:               b.ID.String(),
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		SpecialRequests:  b.SpecialRequests,
		HotelID:          b.HotelID,
		HotelName:        b.HotelName,
		HotelAddress:     b.HotelAddress,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Nights:           b.Nights,
		Guests:           b.Guests,
		Rooms:            b.Rooms,
		RoomDescription:  b.RoomDescription,
		TotalPrice:       b.TotalPrice,
		PaymentReference: b.PaymentReference,
		Paid:             b.Paid,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (d bookingDocument) toEntity() (*entity.Booking, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode booking id %q: %w", d.ID, err)
	}
	return &entity.Booking{
		Base: entity.Base{ID: id, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Guest: entity.Guest{
			FirstName:       d.FirstName,
			LastName:        d.LastName,
			Email:           d.Email,
			Phone:           d.Phone,
			SpecialRequests: d.SpecialRequests,
		},
		Stay: entity.Stay{
			HotelID:         d.HotelID,
			HotelName:       d.HotelName,
			HotelAddress:    d.HotelAddress,
			CheckIn:         d.CheckIn,
			CheckOut:        d.CheckOut,
			Nights:          d.Nights,
			Guests:          d.Guests,
			Rooms:           d.Rooms,
			RoomDescription: d.RoomDescription,
		},
		TotalPrice:       d.TotalPrice,
		PaymentReference: d.PaymentReference,
		Paid:             d.Paid,
	}, nil
}

type bookingMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingMongoRepository(db *mongo.Database, log *zap.Logger) BookingRepository {
	return &bookingMongoRepository{
		coll: db.Collection(bookingsCollection),
		log:  log.With(zap.String("repository", "booking_mongo")),
	}
}

func (r *bookingMongoRepository) Create(ctx context.Context, booking *entity.Booking) error {
	_, err := r.coll.InsertOne(ctx, toBookingDocument(booking))
	if mongo.IsDuplicateKeyError(err) {
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

func (r *bookingMongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var doc bookingDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	return doc.toEntity()
}

func (r *bookingMongoRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Paid != nil {
		set["paid"] = *patch.Paid
	}
	if patch.TotalPrice != nil {
		set["total_price"] = *patch.TotalPrice
	}
	if patch.PaymentReference != nil {
		set["payment_reference"] = *patch.PaymentReference
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookingDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update booking %s: %w", id, ErrRecordNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}
	return doc.toEntity()
}

func (r *bookingMongoRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete booking %s: %w", id, ErrRecordNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingMongoRepository) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		r.log.Error("Failed to list bookings by email", zap.Error(err))
		return nil, fmt.Errorf("find bookings by email: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*entity.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking document: %w", err)
		}
		booking, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking documents: %w", err)
	}

	return bookings, nil
}

func (r *bookingMongoRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		r.log.Error("Failed to count bookings by email", zap.Error(err))
		return 0, fmt.Errorf("count bookings by email: %w", err)
	}
	return count, nil
}
