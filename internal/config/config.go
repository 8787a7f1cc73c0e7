package config

import (
	"os"
	"strconv"
)

// Settings holds all environment-driven configuration. Load once in main and
// pass values down; nothing in this package is mutated after Load returns.
type Settings struct {
	AssemblyAIAPIKey string
	GroqAPIKey       string
	GroqModelName    string

	// Reserved for transcript chunking before LLM calls; the mediators do
	// not consume these yet.
	ChunkSize    int
	ChunkOverlap int

	UploadDir    string
	Port         string
	DashboardURL string
}

func Load() Settings {
	return Settings{
		AssemblyAIAPIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		GroqModelName:    getenv("GROQ_MODEL_NAME", "llama-3.3-70b-versatile"),
		ChunkSize:        getenvInt("CHUNK_SIZE", 4000),
		ChunkOverlap:     getenvInt("CHUNK_OVERLAP", 200),
		UploadDir:        getenv("UPLOAD_DIR", "/tmp/audio_uploads"),
		Port:             getenv("PORT", "8080"),
		DashboardURL:     os.Getenv("DASHBOARD_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
