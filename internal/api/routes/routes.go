package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notetakerhq/notetaker-api/internal/api/handlers"
)

type Deps struct {
	Transcription *handlers.TranscriptionHandler
	LLM           *handlers.LLMHandler

	// DashboardURL, when set, turns GET / into a redirect to the
	// dashboard front-end.
	DashboardURL string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/", func(c *gin.Context) {
		if d.DashboardURL != "" {
			c.Redirect(http.StatusTemporaryRedirect, d.DashboardURL)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/transcribe", d.Transcription.Transcribe)

	llm := v1.Group("/llm")
	llm.POST("/summarize", d.LLM.Summarize)
	llm.POST("/extract-action-items", d.LLM.ExtractActionItems)
	llm.POST("/chat", d.LLM.Chat)
}
