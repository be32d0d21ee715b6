package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

var ErrNotConfigured = errors.New("smtp host is not configured")

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

type SMTPMailer struct {
	cfg  utils.EmailConfig
	log  *zap.Logger
	send func(ctx context.Context, msg *mail.Msg) error
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	m := &SMTPMailer{
		cfg: cfg,
		log: log.With(zap.String("mailer", "smtp")),
	}
	m.send = m.dialAndSend
	return m
}

// Send builds the message and delivers it in a single SMTP session.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	built, err := buildMessage(msg)
	if err != nil {
		return err
	}

	if err := m.send(ctx, built); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.log.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	if m.cfg.Host == "" {
		return ErrNotConfigured
	}

	timeout := time.Duration(m.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func buildMessage(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid to address %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
