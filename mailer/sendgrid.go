package mailer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/kxxnxr13/web-inmobiliaria/models"
)

const inquiryEmailHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af; border-bottom: 2px solid #f59e0b; padding-bottom: 10px;">
    New Inquiry from the Website
  </h2>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #1e40af; margin-top: 0;">Client Information:</h3>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Consultation Type:</strong> %s</p>
  </div>
  <div style="background-color: #fff; padding: 20px; border-left: 4px solid #f59e0b;">
    <h3 style="color: #1e40af; margin-top: 0;">Message:</h3>
    <p style="line-height: 1.6;">%s</p>
  </div>
  <div style="text-align: center; margin-top: 30px; padding: 20px; background-color: #1e40af; color: white; border-radius: 8px;">
    <p style="margin: 0;">This email was sent from the website contact form</p>
    <p style="margin: 5px 0 0 0; font-size: 12px; opacity: 0.8;">Date: %s</p>
  </div>
</div>`

// SendGridRelay delivers the inquiry directly through SendGrid instead of a
// generic form-relay endpoint.
type SendGridRelay struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewSendGridRelay(apiKey, from, to string) *SendGridRelay {
	return &SendGridRelay{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (r *SendGridRelay) Send(ctx context.Context, msg models.ContactRequest) (string, error) {
	consultation := msg.ConsultationType
	if consultation == "" {
		consultation = "General"
	}
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}

	from := mail.NewEmail("Website Contact", r.from)
	to := mail.NewEmail("", r.to)
	subject := fmt.Sprintf("New inquiry: %s", consultation)

	plain := fmt.Sprintf(
		"New Inquiry from the Website\n\nName: %s\nEmail: %s\nPhone: %s\nConsultation Type: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, phone, consultation, msg.Message,
	)
	html := fmt.Sprintf(
		inquiryEmailHTML,
		msg.Name, msg.Email, phone, consultation, msg.Message,
		time.Now().Format("January 2, 2006 15:04"),
	)

	email := mail.NewSingleEmail(from, subject, to, plain, html)
	email.SetReplyTo(mail.NewEmail(msg.Name, msg.Email))

	resp, err := r.client.SendWithContext(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
			return ids[0], nil
		}
		return "", nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return "", ErrRelayUnconfigured
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		return "", fmt.Errorf("%w: status %d", ErrSubmission, resp.StatusCode)
	}
}
