package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	HTTPAddr string
	AppEnv   string

	DBDriver string
	DBDSN    string

	AIProvider    string
	GroqAPIKey    string
	GeminiAPIKey  string
	AIModel       string
	AIBaseURL     string
	AITemperature float32
	AIMaxTokens   int
	AITopP        float32
	AICallTimeout time.Duration
	AIMaxRetries  int

	DuplicateThreshold  float64
	SimilarityThreshold float64

	RedisAddr    string
	RedisChannel string

	CORSOrigins []string
}

// Load reads the optional .env file and then the process environment.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Debug(".env file not found, using process environment")
	}

	return Settings{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		AppEnv:   envOr("APP_ENV", "development"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DATABASE_DSN", ""),

		AIProvider:    strings.ToLower(envOr("AI_PROVIDER", "groq")),
		GroqAPIKey:    strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AIModel:       envOr("AI_MODEL", ""),
		AIBaseURL:     envOr("AI_BASE_URL", ""),
		AITemperature: float32(envFloat("AI_TEMPERATURE", 0.7)),
		AIMaxTokens:   envInt("AI_MAX_TOKENS", 500),
		AITopP:        float32(envFloat("AI_TOP_P", 0.8)),
		AICallTimeout: envDuration("AI_CALL_TIMEOUT", 30*time.Second),
		AIMaxRetries:  envInt("AI_MAX_RETRIES", 1),

		DuplicateThreshold:  envFloat("DUPLICATE_THRESHOLD", 0.6),
		SimilarityThreshold: envFloat("SIMILARITY_THRESHOLD", 0.8),

		RedisAddr:    envOr("REDIS_ADDR", ""),
		RedisChannel: envOr("REDIS_CHANNEL", "quiz-events"),

		CORSOrigins: csvOr("CORS_ORIGINS", "*"),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		Logger.Warnf("Invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		Logger.Warnf("Invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

// envDuration accepts Go durations ("45s") or a plain number of seconds.
func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	Logger.Warnf("Invalid %s=%q, using %s", key, v, def)
	return def
}

func csvOr(key, def string) []string {
	raw := envOr(key, def)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
