package config

import "os"

// Config holds all application configuration
type Config struct {
	Port     string
	LogLevel string

	// Vision service (OpenAI-compatible endpoint)
	VisionBaseURL string
	VisionAPIKey  string
	VisionModel   string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		VisionBaseURL: getEnv("VISION_BASE_URL", "https://api.openai.com/v1"),
		VisionAPIKey:  getEnv("VISION_API_KEY", ""),
		VisionModel:   getEnv("VISION_MODEL", "gpt-4o-mini"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
