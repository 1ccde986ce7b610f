package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	PostgresDSN    string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	RedisPassword  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	GeminiAPIKey string
	TextModel    string
	ImageModel   string
	VideoModel   string
	PollInterval time.Duration

	SessionSecret string
}

// Load reads configuration from the environment, after applying a local .env
// file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getenv("PORT", "8080"),
		PostgresDSN:    getenv("POSTGRES_DSN", ""),
		MongoURI:       getenv("MONGO_URI", ""),
		MongoDB:        getenv("MONGO_DB", "infographic_ai"),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		MinioEndpoint:  getenv("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "infographic-assets"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",
		GeminiAPIKey:   getenv("GEMINI_API_KEY", ""),
		TextModel:      getenv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:     getenv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
		VideoModel:     getenv("GEMINI_VIDEO_MODEL", "veo-2.0-generate-001"),
		PollInterval:   getduration("GEMINI_POLL_INTERVAL", 5*time.Second),
		SessionSecret:  getenv("SESSION_SECRET", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
