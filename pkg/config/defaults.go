// Package config provides centralized default values for the Shanti Himalaya content engine
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

// HTTP server timeouts
var (
	ServerReadTimeout  = getEnvDuration("SERVER_READ_TIMEOUT", 0) // 0 keeps SSE streams open
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 0)
	ServerIdleTimeout  = getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second)
)

// Database thresholds
var SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 100*time.Millisecond)

// AI generation
var (
	AIRequestTimeout = getEnvDuration("AI_REQUEST_TIMEOUT", 45*time.Second)
	AIModel          = getEnvString("AI_MODEL", "gpt-4o-mini")
	AIMaxTokens      = getEnvInt("AI_MAX_TOKENS", 4000)
)

// Change feed limits
var (
	MaxSSEConnections   = int64(getEnvInt("MAX_SSE_CONNECTIONS", 1000))
	ChangeChannelBuffer = getEnvInt("CHANGE_CHANNEL_BUFFER", 16)
	SSEHeartbeat        = getEnvDuration("SSE_HEARTBEAT", 30*time.Second)
)

// Enquiry notification delivery
var (
	EmailSendAttempts = getEnvInt("EMAIL_SEND_ATTEMPTS", 3)
	EmailRetryDelay   = getEnvDuration("EMAIL_RETRY_DELAY", 2*time.Second)
)

// Auth token lifetime
var AdminTokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", 24*time.Hour)

// Gallery image pipeline
var (
	GalleryImageSizes  = []int{1920, 1080, 600}
	GalleryWebPQuality = float32(getEnvInt("GALLERY_WEBP_QUALITY", 80))
)
