package mailer

import (
	"context"
	"errors"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun delivers queued EmailJobs. The API process never touches it;
// only the email worker drains jobs into Mailgun.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// SendJob delivers one queued job. Text is the base body; HTML, when the
// job carries it, becomes the rich variant.
func (m *Mailgun) SendJob(ctx context.Context, job EmailJob) error {
	if job.To == "" {
		return errors.New("email job without recipient")
	}
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, job.Subject, job.Text, job.To)
	if job.HTML != "" {
		msg.SetHtml(job.HTML)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}
