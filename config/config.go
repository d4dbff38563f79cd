package config

import (
	"server/internal/logger"
	"strings"

	"github.com/spf13/viper"
)

// Config is kept flat and comparable so callers can test against the zero
// value. Secrets come from the environment; everything else has a default.
type Config struct {
	Environment string
	ServerPort  string

	DatabaseHost     string
	DatabasePort     int
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseSSLMode  string
	DatabaseDbPath   string

	DatabaseCacheAddress string
	DatabaseCachePort    int

	AuthJwtSecret string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceID       string

	PdfServiceURL string
	AppBaseURL    string

	AdminKeyHash string
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("environment", "development")
	viper.SetDefault("server_port", "8080")
	viper.SetDefault("database_host", "localhost")
	viper.SetDefault("database_port", 5432)
	viper.SetDefault("database_user", "postgres")
	viper.SetDefault("database_name", "n400")
	viper.SetDefault("database_sslmode", "require")
	viper.SetDefault("database_cache_address", "localhost")
	viper.SetDefault("database_cache_port", 6379)
	viper.SetDefault("pdf_service_url", "http://localhost:8090")
	viper.SetDefault("app_base_url", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, log.Err("failed to read config file", err)
		}
		log.Info("No config file found, using environment")
	}

	config := Config{
		Environment:          viper.GetString("environment"),
		ServerPort:           viper.GetString("server_port"),
		DatabaseHost:         viper.GetString("database_host"),
		DatabasePort:         viper.GetInt("database_port"),
		DatabaseUser:         viper.GetString("database_user"),
		DatabasePassword:     viper.GetString("database_password"),
		DatabaseName:         viper.GetString("database_name"),
		DatabaseSSLMode:      viper.GetString("database_sslmode"),
		DatabaseDbPath:       viper.GetString("database_db_path"),
		DatabaseCacheAddress: viper.GetString("database_cache_address"),
		DatabaseCachePort:    viper.GetInt("database_cache_port"),
		AuthJwtSecret:        viper.GetString("auth_jwt_secret"),
		StripeSecretKey:      viper.GetString("stripe_secret_key"),
		StripeWebhookSecret:  viper.GetString("stripe_webhook_secret"),
		StripePriceID:        viper.GetString("stripe_price_id"),
		PdfServiceURL:        viper.GetString("pdf_service_url"),
		AppBaseURL:           viper.GetString("app_base_url"),
		AdminKeyHash:         viper.GetString("admin_key_hash"),
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	log := logger.New("config").Function("validate")

	if c.AuthJwtSecret == "" {
		return log.ErrMsg("AUTH_JWT_SECRET is required")
	}
	if c.StripeSecretKey == "" {
		return log.ErrMsg("STRIPE_SECRET_KEY is required")
	}
	if c.StripePriceID == "" {
		return log.ErrMsg("STRIPE_PRICE_ID is required")
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
