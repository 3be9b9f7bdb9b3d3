package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider modes
const (
	ProviderModeHTTP   = "http"
	ProviderModeGemini = "gemini"
)

// Store backends
const (
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
	StoreNone      = "none"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	CORSOrigins []string

	// AI provider
	AIServiceURL   string
	ProviderMode   string
	AnalyzeTimeout time.Duration
	ChatTimeout    time.Duration

	// Google Cloud
	ProjectID string
	Location  string

	// Gemini Model
	GeminiModel string

	// Document store
	StoreBackend string
	HistoryLimit int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// Resume uploads
	ResumeBucketName string
	MaxUploadBytes   int64
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "5000"),
		Debug:       getEnvBool("DEBUG", false),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:5173")),

		// AI provider
		AIServiceURL:   strings.TrimRight(getEnv("AI_SERVICE_URL", "http://localhost:8000"), "/"),
		ProviderMode:   strings.ToLower(getEnv("PROVIDER_MODE", ProviderModeHTTP)),
		AnalyzeTimeout: getEnvDuration("ANALYZE_TIMEOUT", 30*time.Second),
		ChatTimeout:    getEnvDuration("CHAT_TIMEOUT", 15*time.Second),

		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Gemini Model
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Document store
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreFirestore)),
		HistoryLimit: getEnvInt("HISTORY_LIMIT", 50),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 168),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// Resume uploads
		ResumeBucketName: getEnv("RESUME_BUCKET_NAME", ""),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.ProviderMode {
	case ProviderModeHTTP:
		if c.AIServiceURL == "" {
			return &ConfigError{Field: "AI_SERVICE_URL", Message: "AI_SERVICE_URL is required when PROVIDER_MODE=http"}
		}
	case ProviderModeGemini:
		// Vertex AI needs a project
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when PROVIDER_MODE=gemini"}
		}
	default:
		return &ConfigError{Field: "PROVIDER_MODE", Message: "PROVIDER_MODE must be one of: http, gemini"}
	}

	switch c.StoreBackend {
	case StoreFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when STORE_BACKEND=firestore"}
		}
	case StoreMemory, StoreNone:
	default:
		return &ConfigError{Field: "STORE_BACKEND", Message: "STORE_BACKEND must be one of: firestore, memory, none"}
	}

	if c.AnalyzeTimeout <= 0 {
		return &ConfigError{Field: "ANALYZE_TIMEOUT", Message: "ANALYZE_TIMEOUT must be positive"}
	}
	if c.ChatTimeout <= 0 {
		return &ConfigError{Field: "CHAT_TIMEOUT", Message: "CHAT_TIMEOUT must be positive"}
	}
	if c.HistoryLimit <= 0 {
		return &ConfigError{Field: "HISTORY_LIMIT", Message: "HISTORY_LIMIT must be positive"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("30s") or bare milliseconds ("30000").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
