package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Matching cap: 0 means unbounded.
	MatchMaxResults int

	// Report thresholds, in days.
	StaleAfterDays    int
	ReengageAfterDays int

	// Seed credential for the single admin login.
	AdminUser string
	AdminPass string
}

func Load() Config {
	// Load .env if present; real env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DBDSN:             getEnv("DB_DSN", "circular.db"), // sqlite file in project root
		LogFile:           getEnv("LOG_FILE", "./circular.log"),
		MatchMaxResults:   getEnvInt("MATCH_MAX_RESULTS", 0),
		StaleAfterDays:    getEnvInt("STALE_AFTER_DAYS", 15),
		ReengageAfterDays: getEnvInt("REENGAGE_AFTER_DAYS", 30),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPass:         getEnv("ADMIN_PASS", ""),
	}

	log.Printf("[config] PORT=%s DB_DSN=%s MATCH_MAX_RESULTS=%d STALE_AFTER_DAYS=%d REENGAGE_AFTER_DAYS=%d",
		cfg.Port, cfg.DBDSN, cfg.MatchMaxResults, cfg.StaleAfterDays, cfg.ReengageAfterDays)
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring invalid %s=%q", key, v)
		return def
	}
	return n
}
