package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"
)

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type SupportService interface {
	SubmitTicket(ctx context.Context, req *request.SupportTicketRequest) (*response.SupportTicketResponse, error)
}

type supportService struct {
	mail  Mailer
	from  string
	inbox string
	log   *zap.Logger
}

func NewSupportService(mail Mailer, config *utils.Config, log *zap.Logger) SupportService {
	return &supportService{
		mail:  mail,
		from:  config.Email.From,
		inbox: config.Email.SupportInbox,
		log:   log.With(zap.String("service", "support")),
	}
}

// SubmitTicket relays the message to the support inbox with the guest as Reply-To.
func (s *supportService) SubmitTicket(ctx context.Context, req *request.SupportTicketRequest) (*response.SupportTicketResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	req.BookingID = strings.TrimSpace(req.BookingID)

	if err := validate(req); err != nil {
		return nil, err
	}

	if s.inbox == "" || s.from == "" {
		s.log.Error("Support inbox or sender address not configured")
		return nil, fmt.Errorf("%w: support email not configured", ErrEmailTransport)
	}

	subject := "Support request"
	if req.BookingID != "" {
		subject = fmt.Sprintf("Support request (booking %s)", req.BookingID)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\n", req.Email)
	if req.BookingID != "" {
		fmt.Fprintf(&body, "Booking: %s\n", req.BookingID)
	}
	body.WriteString("\n")
	body.WriteString(req.Message)
	body.WriteString("\n")

	err := s.mail.Send(ctx, mailer.Message{
		From:    s.from,
		To:      s.inbox,
		ReplyTo: req.Email,
		Subject: subject,
		Body:    body.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailTransport, err)
	}

	s.log.Info("Support ticket relayed", zap.String("booking_id", req.BookingID))
	return &response.SupportTicketResponse{OK: true}, nil
}
