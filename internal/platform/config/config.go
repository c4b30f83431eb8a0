package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit         string `mapstructure:"RATE_LIMIT"`

	// LedgerAccountName names the single ledger account resolved at startup.
	LedgerAccountName string `mapstructure:"LEDGER_ACCOUNT_NAME"`

	// IntegrityCheckSchedule is a cron spec; empty disables the job.
	IntegrityCheckSchedule string `mapstructure:"INTEGRITY_CHECK_SCHEDULE"`
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "hafeez-ventures")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("LEDGER_ACCOUNT_NAME", "General Expenses")
	viper.SetDefault("INTEGRITY_CHECK_SCHEDULE", "@hourly")

	// An explicitly empty INTEGRITY_CHECK_SCHEDULE must reach the config.
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.LedgerAccountName = viper.GetString("LEDGER_ACCOUNT_NAME")
	if cfg.LedgerAccountName == "" {
		cfg.LedgerAccountName = "General Expenses"
		log.Printf("Warning: LEDGER_ACCOUNT_NAME not set. Defaulting to %s.\n", cfg.LedgerAccountName)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.IntegrityCheckSchedule = viper.GetString("INTEGRITY_CHECK_SCHEDULE")

	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: running in production with the default JWT secret.")
	}

	return cfg, nil
}
