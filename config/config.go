package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// SeasonConfig is one row of the pricing.seasons list in config.yaml.
type SeasonConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
	Price int    `mapstructure:"price"`
}

// PricingConfig overrides the built-in tables when non-empty.
type PricingConfig struct {
	Seasons     []SeasonConfig     `mapstructure:"seasons"`
	Multipliers map[string]float64 `mapstructure:"multipliers"`
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Proxies whose X-Forwarded-For / X-Real-IP headers are believed.
	// Empty keeps gin's default of trusting every hop.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Session storage.
	SessionStore     string        `mapstructure:"SESSION_STORE"`
	SessionTTL       time.Duration `mapstructure:"SESSION_TTL"`
	DefaultSessionID string        `mapstructure:"DEFAULT_SESSION_ID"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Quote limits and presentation.
	MaxNights      int    `mapstructure:"MAX_NIGHTS"`
	Timezone       string `mapstructure:"TIMEZONE"`
	CurrencySuffix string `mapstructure:"CURRENCY_SUFFIX"`

	Pricing PricingConfig `mapstructure:"pricing"`
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
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL", "0s")
	viper.SetDefault("DEFAULT_SESSION_ID", "global")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("MAX_NIGHTS", 365)
	viper.SetDefault("TIMEZONE", "Europe/Istanbul")
	viper.SetDefault("CURRENCY_SUFFIX", "TL")

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

// UsesRedis reports whether sessions should live in Redis instead of memory.
func UsesRedis() bool {
	return AppConfig.SessionStore == "redis"
}
