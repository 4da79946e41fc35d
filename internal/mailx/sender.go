// Package mailx abstracts outbound notification delivery. The password-reset
// flow only depends on the Sender interface; the SMTP implementation lives
// here so transports can be swapped in tests and local development.
package mailx

import "context"

// Sender delivers a plain-text message to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
