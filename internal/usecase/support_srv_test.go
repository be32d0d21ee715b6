package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
)

func TestSupportService_SubmitTicket(t *testing.T) {
	mail := &fakeMailer{}
	srv := NewSupportService(mail, testConfig(), zap.NewNop())

	resp, err := srv.SubmitTicket(context.Background(), &request.SupportTicketRequest{
		Email:     "  guest@example.com ",
		Message:   "My check-in date is wrong.",
		BookingID: "b-42",
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)

	require.Len(t, mail.sent, 1)
	msg := mail.sent[0]
	assert.Equal(t, "noreply@hotel.example", msg.From)
	assert.Equal(t, "support@hotel.example", msg.To)
	assert.Equal(t, "guest@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "b-42")
	assert.Contains(t, msg.Body, "guest@example.com")
	assert.Contains(t, msg.Body, "Booking: b-42")
	assert.Contains(t, msg.Body, "My check-in date is wrong.")
}

func TestSupportService_SubmitTicketWithoutBooking(t *testing.T) {
	mail := &fakeMailer{}
	srv := NewSupportService(mail, testConfig(), zap.NewNop())

	_, err := srv.SubmitTicket(context.Background(), &request.SupportTicketRequest{
		Email:   "guest@example.com",
		Message: "Do you allow pets?",
	})
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Support request", mail.sent[0].Subject)
	assert.NotContains(t, mail.sent[0].Body, "Booking:")
}

func TestSupportService_Validation(t *testing.T) {
	tests := []struct {
		name   string
		req    request.SupportTicketRequest
		fields []string
	}{
		{name: "empty", req: request.SupportTicketRequest{}, fields: []string{"email", "message"}},
		{name: "bad email", req: request.SupportTicketRequest{Email: "nope", Message: "hi"}, fields: []string{"email"}},
		{name: "blank message", req: request.SupportTicketRequest{Email: "a@b.co", Message: "   "}, fields: []string{"message"}},
		{name: "message too long", req: request.SupportTicketRequest{Email: "a@b.co", Message: strings.Repeat("x", 5001)}, fields: []string{"message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := &fakeMailer{}
			srv := NewSupportService(mail, testConfig(), zap.NewNop())

			req := tt.req
			_, err := srv.SubmitTicket(context.Background(), &req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Empty(t, mail.sent)
		})
	}
}

func TestSupportService_TransportFailure(t *testing.T) {
	mail := &fakeMailer{err: errors.New("connection refused")}
	srv := NewSupportService(mail, testConfig(), zap.NewNop())

	_, err := srv.SubmitTicket(context.Background(), &request.SupportTicketRequest{Email: "a@b.co", Message: "hi"})
	assert.ErrorIs(t, err, ErrEmailTransport)
}

func TestSupportService_NotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Email.SupportInbox = ""
	mail := &fakeMailer{}
	srv := NewSupportService(mail, cfg, zap.NewNop())

	_, err := srv.SubmitTicket(context.Background(), &request.SupportTicketRequest{Email: "a@b.co", Message: "hi"})
	assert.ErrorIs(t, err, ErrEmailTransport)
	assert.Empty(t, mail.sent)
}
