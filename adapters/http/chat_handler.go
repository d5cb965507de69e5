package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chatUC "github.com/taingy-srun/portfolio/internal/application/usecase/chat"
	"github.com/taingy-srun/portfolio/internal/domain/conversation"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

type ChatHandler struct {
	chatUseCase *chatUC.ChatUseCase
	logger      logger.Logger
}

func NewChatHandler(uc *chatUC.ChatUseCase, log logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: uc,
		logger:      log,
	}
}

// Chat is the JSON endpoint. The response field is trusted markup.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID, _ = GetSessionIDFromGinContext(c)
	}

	output, err := h.chatUseCase.Execute(c.Request.Context(), chatUC.ChatInput{
		SessionID: sessionID,
		Query:     req.Query,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		SessionID: output.SessionID,
		Topic:     output.Topic,
		Response:  output.Response,
	})
}

// Messages is the form endpoint used by the page widget. It answers with an
// HTML fragment holding the user's message and the bot's reply.
func (h *ChatHandler) Messages(c *gin.Context) {
	sessionID, _ := GetSessionIDFromGinContext(c)
	query := c.PostForm("query")

	output, err := h.chatUseCase.Execute(c.Request.Context(), chatUC.ChatInput{
		SessionID: sessionID,
		Query:     query,
	})
	if err != nil {
		msg := "Sorry, something went wrong. Please try again."
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && !errors.Is(err, apperror.ErrInternal) {
			msg = appErr.Message
		}
		c.HTML(apperror.ToHTTPStatus(err), "chat_error.html", gin.H{"error": msg})
		return
	}

	// Execute already refused blank input, so the trimmed text is non-empty.
	echoed, _ := conversation.NormalizeInput(query)
	transcript := conversation.NewTranscript()
	transcript.AppendUser(echoed)
	transcript.AppendBot(output.Response)

	c.HTML(http.StatusOK, "chat_exchange.html", gin.H{
		"entries": transcript.Entries(),
		"topic":   output.Topic,
	})
}

func (h *ChatHandler) Suggestions(c *gin.Context) {
	suggestions := h.chatUseCase.Suggestions()
	dtos := make([]SuggestionDTO, len(suggestions))
	for i, s := range suggestions {
		dtos[i] = SuggestionDTO(s)
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": dtos})
}
