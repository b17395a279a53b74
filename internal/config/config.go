package config

import (
	"log"
	"os"
)

type Mode string

const (
	// ModeLocal never sends real email and defaults to in-memory
	// storage and the mock generator.
	ModeLocal Mode = "local"

	// ModeProduction sends real email through Resend.
	ModeProduction Mode = "production"
)

type Config struct {
	Mode Mode

	Port string

	// Mail transport (Resend).
	ResendAPIKey  string
	FromAddress   string
	ReplyTo       string
	ReceiverEmail string

	// Generator backend: "mock", "groq" or "vertex".
	LLMBackend   string
	GroqAPIKey   string
	GroqModel    string
	GCPProjectID string
	GCPLocation  string
	ModelName    string

	// Storage backend: "memory", "firestore" or "postgres".
	StorageBackend string
	DatabaseURL    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads all env vars and builds the config.
func Load() *Config {
	modeStr := getEnv("YEHOSHUA_MODE", "local")
	var mode Mode
	switch modeStr {
	case "production":
		mode = ModeProduction
	default:
		mode = ModeLocal
	}

	defaultLLM := "mock"
	if mode == ModeProduction {
		defaultLLM = "groq"
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("PORT", "8080"),

		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		FromAddress:   getEnv("YEHOSHUA_FROM", "Yehoshua Focus <onboarding@resend.dev>"),
		ReplyTo:       getEnv("YEHOSHUA_REPLY_TO", "focus@irkoudo.resend.app"),
		ReceiverEmail: getEnv("RECEIVER_EMAIL", ""),

		LLMBackend:   getEnv("YEHOSHUA_LLM_BACKEND", defaultLLM),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		GroqModel:    getEnv("YEHOSHUA_GROQ_MODEL", "groq/compound"),
		GCPProjectID: getEnv("YEHOSHUA_GCP_PROJECT", ""),
		GCPLocation:  getEnv("YEHOSHUA_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("YEHOSHUA_MODEL_NAME", "gemini-2.5-flash-lite"),

		StorageBackend: getEnv("YEHOSHUA_STORAGE_BACKEND", "memory"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
	}

	// Minimal validation in production mode.
	if cfg.Mode == ModeProduction {
		if cfg.ResendAPIKey == "" {
			log.Fatal("RESEND_API_KEY must be set in production mode")
		}
		if cfg.LLMBackend == "groq" && cfg.GroqAPIKey == "" {
			log.Fatal("GROQ_API_KEY must be set for the groq backend")
		}
	}

	return cfg
}
