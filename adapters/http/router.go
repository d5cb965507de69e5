package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handlers struct {
	Chat    *ChatHandler
	Profile *ProfileHandler
	Contact *ContactHandler
}

func NewRouter(h Handlers, errorMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/resume", h.Profile.GetResume)
		api.GET("/resume/experience/:slug", h.Profile.GetExperience)

		chat := api.Group("/chat")
		chat.Use(SessionMiddleware())
		{
			chat.POST("", h.Chat.Chat)
			chat.GET("/suggestions", h.Chat.Suggestions)
		}
	}

	page := router.Group("/")
	{
		page.POST("/chat/messages", SessionMiddleware(), h.Chat.Messages)
		page.POST("/contact", h.Contact.Submit)
	}

	return router
}
