package mailx

import (
	"context"
	"sync"
)

// Message is a delivered notification captured by RecordingSender.
type Message struct {
	To      string
	Subject string
	Body    string
}

// RecordingSender stores every message instead of delivering it. Used in
// tests and as a console fallback when no SMTP relay is configured.
type RecordingSender struct {
	mu       sync.Mutex
	messages []Message

	// Err, when set, is returned from Send to simulate delivery failure.
	Err error
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

func (r *RecordingSender) Send(ctx context.Context, to, subject, body string) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Messages returns a copy of everything sent so far.
func (r *RecordingSender) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
