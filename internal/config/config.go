package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DBDSN           string
	JWTSecret       string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	RotateRefresh   bool
	OwnerScopedList bool
	AllowBackorder  bool
	LogFile         string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stockroom.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Printf("[config] JWT_SECRET not set, using insecure dev default")
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./stockroom.log" // default log sink in project root
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		JWTSecret:       secret,
		AccessTTL:       duration("ACCESS_TTL", 5*time.Minute),
		RefreshTTL:      duration("REFRESH_TTL", 24*time.Hour),
		RotateRefresh:   boolean("ROTATE_REFRESH", true),
		OwnerScopedList: boolean("OWNER_SCOPED_LIST", false),
		AllowBackorder:  boolean("ALLOW_BACKORDER", false),
		LogFile:         logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s ACCESS_TTL=%s REFRESH_TTL=%s ROTATE_REFRESH=%t OWNER_SCOPED_LIST=%t ALLOW_BACKORDER=%t",
		cfg.Port, cfg.DBDSN, cfg.AccessTTL, cfg.RefreshTTL, cfg.RotateRefresh, cfg.OwnerScopedList, cfg.AllowBackorder)
	return cfg
}

func duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] bad %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] bad %s=%q, using %t", key, v, def)
		return def
	}
	return b
}
