package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/notetakerhq/notetaker-api/internal/api/handlers"
	"github.com/notetakerhq/notetaker-api/internal/api/middleware"
	"github.com/notetakerhq/notetaker-api/internal/api/routes"
	"github.com/notetakerhq/notetaker-api/internal/config"
	"github.com/notetakerhq/notetaker-api/internal/logger"
	"github.com/notetakerhq/notetaker-api/internal/providers/llm"
	"github.com/notetakerhq/notetaker-api/internal/providers/stt"
	"github.com/notetakerhq/notetaker-api/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.WithError(err).WithField("dir", cfg.UploadDir).Warn("could not create upload directory")
	}

	// A missing credential leaves the matching service unconfigured; its
	// operations answer 503 instead of taking the whole API down.
	var sttProvider stt.Provider
	if p, err := stt.NewAssemblyAI(cfg.AssemblyAIAPIKey); err != nil {
		log.WithError(err).Error("transcription provider not configured, /transcribe will be unavailable")
	} else {
		sttProvider = p
	}

	var llmProvider llm.Provider
	if p, err := llm.NewGroq(cfg.GroqAPIKey, cfg.GroqModelName); err != nil {
		log.WithError(err).Error("LLM provider not configured, /llm endpoints will be unavailable")
	} else {
		llmProvider = p
		log.WithField("model", cfg.GroqModelName).Info("LLM provider initialized")
	}

	transcriptionSvc := services.NewTranscriptionService(sttProvider, cfg.UploadDir, log)
	llmSvc := services.NewLLMService(llmProvider, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	routes.RegisterRoutes(r, routes.Deps{
		Transcription: handlers.NewTranscriptionHandler(transcriptionSvc, log),
		LLM:           handlers.NewLLMHandler(llmSvc, log),
		DashboardURL:  cfg.DashboardURL,
	})

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
