package mailer

import (
	"context"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun sends transactional email for the storefront (welcome mail after
// signup). The underlying client is safe for concurrent use.
type Mailgun struct {
	client *mg.MailgunImpl
	sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), sender: sender}
}

// Send delivers one message. text is the plain-text body; a non-empty html
// argument is attached as the HTML alternative.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	_, _, err := m.client.Send(ctx, msg)
	return err
}
