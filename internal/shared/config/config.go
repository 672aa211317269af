package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Model     ModelConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port         int
	Env          string
	MaxBodyBytes int64
}

type AuthConfig struct {
	JWTSecret string
}

// ModelConfig identifies the engine reported in analysis responses.
type ModelConfig struct {
	Name string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     int
	Burst   int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 5000),
			Env:          getEnv("ENV", "development"),
			MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 10*1024*1024)),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-prod"),
		},
		Model: ModelConfig{
			Name: getEnv("MODEL_NAME", "ai-mock-v1 (demo) | Production: OpenBioLLM-70B + DeepSeek-R1"),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", false),
			RPS:     getEnvInt("RATE_LIMIT_RPS", 50),
			Burst:   getEnvInt("RATE_LIMIT_BURST", 100),
		},
		CORS: CORSConfig{
			// Wildcard by default: the demo UI is served from another origin.
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
