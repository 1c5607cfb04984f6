package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends alerts over SMTP to a single configured recipient.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewMailer creates a Mailer. Username and password may be empty for
// unauthenticated relays.
func NewMailer(host string, port int, username, password, from, to string) (*Mailer, error) {
	if host == "" || from == "" || to == "" {
		return nil, fmt.Errorf("smtp host, from and to are required")
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}, nil
}

// Send delivers the message. gomail dials per message and has no
// context support, so ctx is only honored up front.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
