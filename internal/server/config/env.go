package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading a .env
// file first when one is present. Unset variables leave the current value
// untouched; malformed numeric or duration values panic.
func parseEnv(config *Config) {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SessionTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("RESET_TOKEN_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ResetTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	if v, ok := os.LookupEnv("SMTP_ADDR"); ok {
		config.SMTPAddr = v
	}
	if v, ok := os.LookupEnv("SMTP_USER"); ok {
		config.SMTPUser = v
	}
	if v, ok := os.LookupEnv("SMTP_PASSWORD"); ok {
		config.SMTPPassword = v
	}
	if v, ok := os.LookupEnv("SMTP_FROM"); ok {
		config.SMTPFrom = v
	}
	if v, ok := os.LookupEnv("RESET_URL_BASE"); ok {
		config.ResetURLBase = v
	}
	if v, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		config.CORSAllowOrigins = v
	}
}
