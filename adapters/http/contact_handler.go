package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/pkg/logger"
)

const contactAck = "Thank you for your message! I will get back to you soon."

type ContactHandler struct {
	logger logger.Logger
}

func NewContactHandler(log logger.Logger) *ContactHandler {
	return &ContactHandler{logger: log}
}

// Submit acknowledges the contact form. Nothing is delivered or stored.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Contact form could not be read", zap.Error(err))
	}

	h.logger.Info("Contact form acknowledged", zap.Int("message_len", len(form.Message)))
	c.HTML(http.StatusOK, "contact_success.html", gin.H{"success": contactAck})
}
