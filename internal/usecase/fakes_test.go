package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/payment"
	"hotel-booking/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{FrontendURL: "http://localhost:3000"},
		Email: utils.EmailConfig{
			From:         "noreply@hotel.example",
			SupportInbox: "support@hotel.example",
		},
		JWT: utils.JWTConfig{Secret: "test-secret", AccessTTLMinutes: 15, RefreshTTLHours: 24},
	}
}

type fakeGateway struct {
	mu        sync.Mutex
	sessions  map[string]*payment.CheckoutSession
	requests  []payment.CheckoutRequest
	createErr error
	getErr    error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*payment.CheckoutSession{}}
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.requests = append(g.requests, req)
	if g.createErr != nil {
		return nil, g.createErr
	}

	id := fmt.Sprintf("cs_test_%d", len(g.sessions)+1)
	md := map[string]string{}
	for k, v := range req.Metadata {
		md[k] = v
	}
	sess := &payment.CheckoutSession{
		ID:          id,
		URL:         "https://checkout.example/" + id,
		AmountTotal: req.AmountMinor,
		Metadata:    md,
	}
	g.sessions[id] = sess
	copied := *sess
	return &copied, nil
}

func (g *fakeGateway) RetrieveSession(ctx context.Context, sessionID string) (*payment.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.getErr != nil {
		return nil, g.getErr
	}
	sess, ok := g.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such checkout session")
	}
	copied := *sess
	return &copied, nil
}

func (g *fakeGateway) markPaid(sessionID, paymentIntent string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sessionID].Paid = true
	g.sessions[sessionID].PaymentIntentID = paymentIntent
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// racingBookingRepo simulates a concurrent verification that inserts the
// booking between our failed update and our insert.
type racingBookingRepo struct {
	repository.BookingRepository
	once  sync.Once
	racer *entity.Booking
}

func (r *racingBookingRepo) UpdateByID(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error) {
	raced := false
	r.once.Do(func() {
		raced = true
		_ = r.BookingRepository.Create(ctx, r.racer)
	})
	if raced {
		return nil, fmt.Errorf("update booking %s: %w", id, repository.ErrRecordNotFound)
	}
	return r.BookingRepository.UpdateByID(ctx, id, patch)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicateKey
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) find(match func(*entity.User) bool) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username }), nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.Token] = &copied
	return nil
}

func (r *fakeSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil {
		return repository.ErrRecordNotFound
	}
	now := s.CreatedAt
	s.RevokedAt = &now
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}
