package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kxxnxr13/web-inmobiliaria/mailer"
	"github.com/kxxnxr13/web-inmobiliaria/models"
)

type ContactController struct {
	relay mailer.Relay
}

func NewContactController(relay mailer.Relay) *ContactController {
	return &ContactController{relay: relay}
}

// SubmitContact forwards a validated contact form to the mail relay. There is
// no retry: any failure is reported to the caller and the form must be
// resubmitted.
func (cc *ContactController) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ContactResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ContactResponse{
			Success: false,
			Message: "Name, email and message are required",
		})
	}

	messageID, err := cc.relay.Send(c.Request().Context(), req)
	if err != nil {
		status, msg := classifyRelayError(err)
		return c.JSON(status, models.ContactResponse{Success: false, Message: msg})
	}

	return c.JSON(http.StatusOK, models.ContactResponse{
		Success:   true,
		Message:   "Message sent successfully",
		MessageID: messageID,
	})
}

func classifyRelayError(err error) (int, string) {
	switch {
	case errors.Is(err, mailer.ErrRelayUnconfigured):
		return http.StatusBadGateway, "The contact service is not yet activated. Please try again later."
	case errors.Is(err, mailer.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many messages sent. Please wait a few minutes and try again."
	case errors.Is(err, mailer.ErrConnectivity):
		return http.StatusServiceUnavailable, "Could not reach the mail service. Please check your connection and try again."
	default:
		return http.StatusInternalServerError, "Something went wrong sending your message. Please try again."
	}
}
