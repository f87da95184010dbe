package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/planora/planora-go/internal/service"
)

type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	AccessSecret    string
	RefreshSecret   string
	AllowedOrigins  []string
	OwnershipPolicy service.OwnershipPolicy
}

// Load reads configuration from the environment. The two token secrets
// have no defaults and must differ; anything else would let a refresh
// token pass as an access token.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/planora?parseTime=true"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
	}

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		slog.Error("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
		os.Exit(1)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		slog.Error("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
		os.Exit(1)
	}

	cfg.AllowedOrigins = []string{"http://localhost:5173"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	switch getEnv("OWNERSHIP_DENIED", "not_found") {
	case "forbidden":
		cfg.OwnershipPolicy = service.OwnershipForbidden
	default:
		cfg.OwnershipPolicy = service.OwnershipNotFound
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
