package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

var ErrNotConfigured = errors.New("payment provider is not configured")

// CheckoutRequest describes a single-line-item hosted checkout.
type CheckoutRequest struct {
	AmountMinor   int64
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession is the provider-agnostic view of a checkout session.
type CheckoutSession struct {
	ID          string
	URL         string
	Paid        bool
	AmountTotal int64
	Currency    string
	// PaymentIntentID is empty until the provider has created the intent.
	PaymentIntentID string
	Metadata        map[string]string
}

// Reference is the identifier stored on the booking: the payment intent when
// known, otherwise the session itself.
func (s *CheckoutSession) Reference() string {
	if s.PaymentIntentID != "" {
		return s.PaymentIntentID
	}
	return s.ID
}

type StripeGateway struct {
	api      *client.API
	currency string
	enabled  bool
	log      *zap.Logger
}

// NewStripeGateway builds a client with its own backend so timeouts and the
// base URL stay per-instance. Retries are disabled.
func NewStripeGateway(cfg utils.StripeConfig, log *zap.Logger) *StripeGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	log = log.With(zap.String("gateway", "stripe"))

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     log.Sugar(),
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, &stripe.BackendConfig{HTTPClient: httpClient}),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, &stripe.BackendConfig{HTTPClient: httpClient}),
	}

	currency := cfg.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	return &StripeGateway{
		api:      client.New(cfg.SecretKey, backends),
		currency: currency,
		enabled:  cfg.SecretKey != "",
		log:      log,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if !g.enabled {
		return nil, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.Int64("amount", req.AmountMinor),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return toCheckoutSession(sess), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	if !g.enabled {
		return nil, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		g.log.Error("Failed to retrieve checkout session",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, fmt.Errorf("retrieve checkout session %s: %w", sessionID, err)
	}

	return toCheckoutSession(sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:          sess.ID,
		URL:         sess.URL,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: sess.AmountTotal,
		Currency:    string(sess.Currency),
		Metadata:    sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}
