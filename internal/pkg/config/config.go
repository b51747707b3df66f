// Package config loads the service configuration from flags and the
// environment. A .env file in the working directory is honored so local
// runs do not need exported variables.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything trolleyd needs to start.
type Config struct {
	HTTPAddr string
	LogLevel string

	PairCode    string
	TripLogPath string

	RedisAddr   string // empty disables the idempotency cache
	ChargeLimit float64

	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string
}

// Load reads the .env file (if present), then the environment, then lets
// command line flags override the basics.
func Load(args []string) (Config, error) {
	// Missing .env is fine; env vars may come from the real environment.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		PairCode:     getEnv("PAIR_CODE", "SC1234"),
		TripLogPath:  getEnv("TRIPLOG_PATH", "trolley.db"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		ChargeLimit:  getEnvFloat("CHARGE_LIMIT", 0),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPSender:   getEnv("SMTP_SENDER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
	}

	fs := flag.NewFlagSet("trolleyd", flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run the server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.TripLogPath, "d", cfg.TripLogPath, "path of the trip log database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
