package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kxxnxr13/web-inmobiliaria/models"
)

// Relay failure classes. A caller maps these to user-facing messages; every
// failure is retryable by resubmitting the form.
var (
	// ErrRelayUnconfigured: the relay rejected the submission because it is
	// not yet activated or is misconfigured (HTTP 422).
	ErrRelayUnconfigured = errors.New("mail relay not activated or misconfigured")

	// ErrRateLimited: the relay asked us to slow down (HTTP 429).
	ErrRateLimited = errors.New("mail relay rate limited")

	// ErrSubmission: any other non-2xx response.
	ErrSubmission = errors.New("mail submission failed")

	// ErrConnectivity: no response at all.
	ErrConnectivity = errors.New("mail relay unreachable")
)

// Relay forwards a contact form payload to an email-sending backend. There is
// no retry policy; a failed send surfaces an error and the form must be
// resubmitted.
type Relay interface {
	Send(ctx context.Context, msg models.ContactRequest) (messageID string, err error)
}

// HTTPRelay posts the payload as JSON to a form-relay endpoint. Subject and
// reply-to are attached transparently alongside the form fields.
type HTTPRelay struct {
	endpoint string
	client   *http.Client
}

func NewHTTPRelay(endpoint string) *HTTPRelay {
	return &HTTPRelay{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
}

func (r *HTTPRelay) Send(ctx context.Context, msg models.ContactRequest) (string, error) {
	subject := "New inquiry: General"
	if msg.ConsultationType != "" {
		subject = "New inquiry: " + msg.ConsultationType
	}

	payload := map[string]string{
		"name":             msg.Name,
		"email":            msg.Email,
		"phone":            msg.Phone,
		"consultationType": msg.ConsultationType,
		"message":          msg.Message,
		"_subject":         subject,
		"_replyto":         msg.Email,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var result struct {
			MessageID string `json:"messageId"`
		}
		// Body shape depends on the relay; a missing id is not a failure.
		_ = json.NewDecoder(resp.Body).Decode(&result)
		return result.MessageID, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return "", ErrRelayUnconfigured
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		return "", fmt.Errorf("%w: status %d", ErrSubmission, resp.StatusCode)
	}
}
