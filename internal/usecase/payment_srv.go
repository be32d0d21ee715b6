package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/payment"
	"hotel-booking/pkg/utils"
)

// PaymentGateway is the hosted-checkout provider.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*payment.CheckoutSession, error)
}

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *request.CreateCheckoutSessionRequest) (*response.CheckoutSessionResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error)
}

const (
	defaultProductName = "Hotel booking"
	// Placeholder the provider substitutes with the real session id on redirect.
	checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"
)

type paymentService struct {
	bookings    repository.BookingRepository
	gateway     PaymentGateway
	frontendURL string
	log         *zap.Logger
}

func NewPaymentService(bookings repository.BookingRepository, gateway PaymentGateway, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		bookings:    bookings,
		gateway:     gateway,
		frontendURL: config.App.PrimaryFrontendURL(),
		log:         log.With(zap.String("service", "payment")),
	}
}

// CreateCheckoutSession opens a hosted checkout for an existing booking or for
// a draft. Drafts get a reserved booking id so verification creates exactly
// one record for them.
func (s *paymentService) CreateCheckoutSession(ctx context.Context, req *request.CreateCheckoutSessionRequest) (*response.CheckoutSessionResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.BookingID == "" && req.BookingDraft == nil {
		return nil, ErrMissingBookingReference
	}

	metadata := map[string]string{}
	productName := req.HotelName
	email := req.Email

	if req.BookingDraft != nil {
		draft := req.BookingDraft.ToDraft()
		for k, v := range draft.ToMetadata() {
			metadata[k] = v
		}
		if productName == "" {
			productName = draft.HotelName
		}
		if email == "" {
			email = draft.Email
		}
	}
	if productName == "" {
		productName = defaultProductName
	}

	bookingID := req.BookingID
	if bookingID == "" {
		bookingID = uuid.NewString()
	}
	metadata[entity.MetadataBookingID] = utils.Truncate(bookingID, 500)

	sess, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		AmountMinor:   req.Amount,
		ProductName:   productName,
		CustomerEmail: email,
		SuccessURL:    s.successURL(bookingID),
		CancelURL:     s.cancelURL(bookingID),
		Metadata:      metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	s.log.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("booking_id", bookingID),
		zap.Bool("draft", req.BookingID == ""),
		zap.Int64("amount", req.Amount),
	)

	if req.BookingID != "" {
		s.attachPaymentReference(ctx, req.BookingID, sess.Reference())
	}

	return &response.CheckoutSessionResponse{
		URL:       sess.URL,
		SessionID: sess.ID,
		BookingID: bookingID,
	}, nil
}

// attachPaymentReference records the checkout on an existing booking. The
// session is already created at this point, so failures are logged only.
func (s *paymentService) attachPaymentReference(ctx context.Context, bookingID, reference string) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		s.log.Warn("Payment reference not attached: malformed booking id",
			zap.String("booking_id", bookingID),
			zap.String("payment_reference", reference),
		)
		return
	}

	if _, err := s.bookings.UpdateByID(ctx, id, entity.BookingPatch{PaymentReference: &reference}); err != nil {
		s.log.Warn("Payment reference not attached",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("payment_reference", reference),
		)
	}
}

// VerifyPayment reconciles the provider's session state with the booking.
// Repeating it for the same session converges on the same record.
func (s *paymentService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	sess, err := s.gateway.RetrieveSession(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	amount := utils.MajorUnits(sess.AmountTotal)
	bookingRef := s.resolveBookingRef(sess, req.BookingID)

	if !sess.Paid {
		s.log.Info("Checkout session not paid yet",
			zap.String("session_id", sess.ID),
			zap.String("booking_id", bookingRef),
		)
		return &response.VerifyPaymentResponse{OK: true, Paid: false, Amount: amount, BookingID: bookingRef}, nil
	}

	draft, hasDraft := entity.BookingDraftFromMetadata(sess.Metadata)

	id, err := uuid.Parse(bookingRef)
	if err != nil {
		if !hasDraft {
			return nil, ErrBookingNotFound
		}
		// No usable id: derive one from the session so retries hit the same record.
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte("checkout-session:"+sess.ID))
	}

	paid := true
	reference := sess.Reference()
	patch := entity.BookingPatch{Paid: &paid, TotalPrice: &amount, PaymentReference: &reference}

	booking, err := s.confirmBooking(ctx, id, patch, draft, hasDraft)
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment verified",
		zap.String("session_id", sess.ID),
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", amount),
	)

	return &response.VerifyPaymentResponse{
		OK:        true,
		Paid:      true,
		Amount:    amount,
		BookingID: booking.ID.String(),
	}, nil
}

// resolveBookingRef picks the booking the session pays for. The id stored in
// the session metadata at checkout wins over whatever the client echoes back.
func (s *paymentService) resolveBookingRef(sess *payment.CheckoutSession, requested string) string {
	reserved := sess.Metadata[entity.MetadataBookingID]
	if reserved == "" {
		return requested
	}
	if requested != "" && requested != reserved {
		s.log.Warn("Verify booking id does not match checkout session",
			zap.String("session_id", sess.ID),
			zap.String("requested_booking_id", requested),
			zap.String("session_booking_id", reserved),
		)
	}
	return reserved
}

// confirmBooking applies the paid patch, materializing the draft when the
// booking does not exist yet. Losing an insert race falls back to the update.
func (s *paymentService) confirmBooking(ctx context.Context, id uuid.UUID, patch entity.BookingPatch, draft *entity.BookingDraft, hasDraft bool) (*entity.Booking, error) {
	booking, err := s.bookings.UpdateByID(ctx, id, patch)
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("confirm booking %s: %w", id, err)
	}
	if !hasDraft {
		return nil, ErrBookingNotFound
	}

	booking = draft.ToBooking(id, time.Now().UTC())
	patch.Apply(booking)

	err = s.bookings.Create(ctx, booking)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return s.bookings.UpdateByID(ctx, id, patch)
	}
	if err != nil {
		return nil, fmt.Errorf("materialize booking %s: %w", id, err)
	}

	s.log.Info("Booking materialized from draft", zap.String("booking_id", id.String()))
	return booking, nil
}

func (s *paymentService) successURL(bookingID string) string {
	return fmt.Sprintf("%s/booking/success?session_id=%s&bookingId=%s",
		s.frontendURL, checkoutSessionPlaceholder, url.QueryEscape(bookingID))
}

func (s *paymentService) cancelURL(bookingID string) string {
	return fmt.Sprintf("%s/booking/cancel?bookingId=%s", s.frontendURL, url.QueryEscape(bookingID))
}
