package notify

import "context"

// Notifier delivers a single alert message.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}
