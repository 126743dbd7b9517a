package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string // Empty means the in-memory store
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration

	RedisURL    string // Non-empty switches ordinal reservation to Redis
	MeiliURL    string // Non-empty enables the archive search index
	MeiliAPIKey string
	MeiliIndex  string

	PosthogAPIKey string
	PosthogHost   string

	RateLimit          string // ulule/limiter format, e.g. "200-M"
	CORSAllowedOrigins []string

	NumberingTemplatesFile string
	SeedFile               string
	EventBufferSize        int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("MEILI_URL", "")
	viper.SetDefault("MEILI_API_KEY", "")
	viper.SetDefault("MEILI_INDEX", "letters")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://eu.i.posthog.com")
	viper.SetDefault("RATE_LIMIT", "200-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("NUMBERING_TEMPLATES_FILE", "configs/numbering.yaml")
	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("EVENT_BUFFER_SIZE", 100)

	// Environment variables override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Letters are kept in memory.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Secret
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1 // Default to 1 hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.EventBufferSize = viper.GetInt("EVENT_BUFFER_SIZE")
	if cfg.EventBufferSize <= 0 {
		cfg.EventBufferSize = 100
		log.Printf("Warning: Invalid EVENT_BUFFER_SIZE. Defaulting to %d.\n", cfg.EventBufferSize)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.MeiliURL = viper.GetString("MEILI_URL")
	cfg.MeiliAPIKey = viper.GetString("MEILI_API_KEY")
	cfg.MeiliIndex = viper.GetString("MEILI_INDEX")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogHost = viper.GetString("POSTHOG_HOST")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.NumberingTemplatesFile = viper.GetString("NUMBERING_TEMPLATES_FILE")
	cfg.SeedFile = viper.GetString("SEED_FILE")

	return cfg, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
