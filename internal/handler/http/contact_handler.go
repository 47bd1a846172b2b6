package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
)

type ContactHandler struct {
	mailService contract.IEmailService
	contactTo   string
}

func NewContactHandler(mailService contract.IEmailService, contactTo string) *ContactHandler {
	return &ContactHandler{mailService: mailService, contactTo: contactTo}
}

// Submit forwards a contact-form message by email. Failures degrade to a
// user-visible error without retry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if h.contactTo == "" {
		ErrorHandler(c, http.StatusServiceUnavailable, "contact form not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	subject := fmt.Sprintf("Contact form message from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	if err := h.mailService.SendEmail(ctx, h.contactTo, subject, body); err != nil {
		ErrorHandler(c, http.StatusBadGateway, "failed to send message")
		return
	}

	MessageHandler(c, http.StatusOK, "Message sent successfully")
}
