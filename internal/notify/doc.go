// Package notify provides the notification interface and its
// implementations: an SMTP mailer for real alerts and a dry-run
// notifier that prints the message instead of sending it.
package notify
