package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Core backend (owns persistence, pricing and payment state).
	BackendBaseURL        string `mapstructure:"BACKEND_BASE_URL"`
	BackendToken          string `mapstructure:"BACKEND_TOKEN"`
	BackendTimeoutSeconds int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisRefDB    int    `mapstructure:"REDIS_REF_DB"`

	// Draft session lifetime.
	DraftTTLMinutes int `mapstructure:"DRAFT_TTL_MINUTES"`

	// Country code prefixed to local phone numbers for wa.me links.
	WhatsAppCountryCode string `mapstructure:"WHATSAPP_COUNTRY_CODE"`

	// Edit-mode policy. The backend does not accept voucher/plan payment
	// on update regardless of these flags.
	EditAllowPaymentChange bool `mapstructure:"EDIT_ALLOW_PAYMENT_CHANGE"`
	EditAllowClienteChange bool `mapstructure:"EDIT_ALLOW_CLIENTE_CHANGE"`

	// Reference-data cache lifetime.
	RefCacheTTLMinutes int `mapstructure:"REF_CACHE_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:3333")
	viper.SetDefault("BACKEND_TOKEN", "")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_REF_DB", 1)
	viper.SetDefault("DRAFT_TTL_MINUTES", 30)
	viper.SetDefault("WHATSAPP_COUNTRY_CODE", "55")
	viper.SetDefault("EDIT_ALLOW_PAYMENT_CHANGE", false)
	viper.SetDefault("EDIT_ALLOW_CLIENTE_CHANGE", false)
	viper.SetDefault("REF_CACHE_TTL_MINUTES", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
