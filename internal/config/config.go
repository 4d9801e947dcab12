package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPPort      string
	BodyLimitMB   int
	MatchTimezone string
}

func Load() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "3000"),
		BodyLimitMB:   getEnvInt("BODY_LIMIT_MB", 10),
		MatchTimezone: getEnv("MATCH_TIMEZONE", "Europe/Malta"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
