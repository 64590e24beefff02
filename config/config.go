package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort      string `mapstructure:"APP_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	Env          string `mapstructure:"ENV"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// SMTP configuration.
	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	SMTPUser  string `mapstructure:"SMTP_USER"`
	SMTPPass  string `mapstructure:"SMTP_PASS"`
	EmailFrom string `mapstructure:"EMAIL_FROM"`

	// Back-office notification targets.
	AdminEmail          string `mapstructure:"ADMIN_EMAIL"`
	AdminConfirmURLBase string `mapstructure:"ADMIN_CONFIRM_URL_BASE"`

	// Business account shown on transfer orders.
	BankAccountNumber string `mapstructure:"PICHINCHA_ACCOUNT_NUMBER"`
	BankAccountHolder string `mapstructure:"PICHINCHA_ACCOUNT_HOLDER"`

	// Shop identity printed on invoices and reports.
	ShopName    string `mapstructure:"INVOICE_SHOP_NAME"`
	ShopAddress string `mapstructure:"INVOICE_SHOP_ADDRESS"`
	ShopTaxID   string `mapstructure:"INVOICE_SHOP_RUC"`

	// Reporting buckets are computed in this time zone.
	ReportTimeZone string `mapstructure:"REPORT_TIME_ZONE"`

	// Stripe credentials for card payments.
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
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
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "salon")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ADMIN_CONFIRM_URL_BASE", "http://localhost:4200/admin/payments/confirm")
	viper.SetDefault("PICHINCHA_ACCOUNT_NUMBER", "0000000000")
	viper.SetDefault("PICHINCHA_ACCOUNT_HOLDER", "Nombre de la empresa")
	viper.SetDefault("INVOICE_SHOP_NAME", "Mi Peluquería")
	viper.SetDefault("INVOICE_SHOP_ADDRESS", "Dirección de la peluquería")
	viper.SetDefault("INVOICE_SHOP_RUC", "RUC: 9999999999")
	viper.SetDefault("REPORT_TIME_ZONE", "America/Guayaquil")

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
