// Package mailer delivers plain-text mail over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

var ErrNotConfigured = errors.New("mailer: smtp host not configured")

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	From string

	send func(ctx context.Context, m *SMTP, msg *mail.Msg) error
}

func NewSMTP(host, port, user, pass, from string) *SMTP {
	if from == "" {
		from = user
	}
	return &SMTP{Host: host, Port: port, User: user, Pass: pass, From: from, send: dialAndSend}
}

func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if m.Host == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := m.compose(to, subject, body)
	if err != nil {
		return err
	}
	if err := m.send(ctx, m, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

// compose builds the message; go-mail encodes non-ASCII headers.
func (m *SMTP) compose(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("mailer: from %q: %w", m.From, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mailer: to %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *SMTP) options() ([]mail.Option, error) {
	port, err := strconv.Atoi(m.Port)
	if err != nil {
		return nil, fmt.Errorf("mailer: port %q: %w", m.Port, err)
	}
	opts := []mail.Option{mail.WithPort(port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if m.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.User),
			mail.WithPassword(m.Pass),
		)
	}
	return opts, nil
}

func dialAndSend(ctx context.Context, m *SMTP, msg *mail.Msg) error {
	opts, err := m.options()
	if err != nil {
		return err
	}
	client, err := mail.NewClient(m.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// Log writes mail to the logger instead of sending it. Used when no SMTP
// host is configured.
type Log struct {
	Logger logrus.FieldLogger
}

func (l Log) Send(_ context.Context, to, subject, _ string) error {
	l.Logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Warn("smtp not configured, mail not sent")
	return nil
}
