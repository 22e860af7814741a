package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all engine configuration
type Config struct {
	Vision     VisionConfig
	Simulated  SimulatedConfig
	Validation ValidationConfig
}

// VisionConfig holds cloud vision backend configuration. An empty APIKey
// disables the cloud path entirely.
type VisionConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// SimulatedConfig holds the local fallback backend configuration
type SimulatedConfig struct {
	Delay time.Duration
}

// ValidationConfig holds quality-validation configuration
type ValidationConfig struct {
	ConfidenceThreshold float32
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Vision: VisionConfig{
			APIKey:   getEnv("VISION_API_KEY", ""),
			Endpoint: getEnv("VISION_ENDPOINT", "https://vision.googleapis.com/v1/images:annotate"),
			Timeout:  getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
		},
		Simulated: SimulatedConfig{
			Delay: getEnvAsDuration("SIM_DELAY", 1500*time.Millisecond),
		},
		Validation: ValidationConfig{
			ConfidenceThreshold: getEnvAsFloat32("OCR_CONFIDENCE_THRESHOLD", 0.5),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Validation.ConfidenceThreshold < 0 || c.Validation.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "OCR_CONFIDENCE_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if c.Vision.APIKey != "" && c.Vision.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "VISION_ENDPOINT is required when VISION_API_KEY is set", ErrInvalidInput)
	}
	return nil
}
