package handlers

import (
	"UnifyMD/models"
	"UnifyMD/services"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// WebhookHandler receives user lifecycle events from the auth provider.
type WebhookHandler struct {
	service services.DoctorService
}

func NewWebhookHandler(service services.DoctorService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

func (h *WebhookHandler) HandleUserEvent(c *gin.Context) {
	event, err := parseAuthEvent(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	if err := h.service.HandleAuthEvent(c.Request.Context(), event); err != nil {
		log.Error().Err(err).Str("event_type", event.EventType).Str("user_id", event.UserID).Msg("failed to handle auth event")
		c.String(http.StatusBadRequest, "Error: "+err.Error())
		return
	}
	c.String(http.StatusOK, "Success!")
}

// parseAuthEvent reads the body as form values when sent form encoded and as
// JSON text otherwise, whatever the declared content type.
func parseAuthEvent(c *gin.Context) (*models.AuthEvent, error) {
	var event models.AuthEvent
	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.ShouldBindWith(&event, binding.Form); err != nil {
			return nil, err
		}
		return &event, nil
	}

	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
