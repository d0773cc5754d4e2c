package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// Mailer delivers queued email jobs through Mailgun. The underlying
// client is built once and holds no per-send state.
type Mailer struct {
	client *mg.MailgunImpl
	sender string
}

func NewMailer(domain, apiKey, sender string) *Mailer {
	return &Mailer{client: mg.NewMailgun(domain, apiKey), sender: sender}
}

// Send delivers one job, bounded by sendTimeout so a stuck Mailgun call
// cannot hold a queue delivery open indefinitely.
func (m *Mailer) Send(ctx context.Context, job EmailJob) error {
	msg := m.client.NewMessage(m.sender, job.Subject, job.Text, job.To)
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	_, _, err := m.client.Send(ctx, msg)
	return err
}
