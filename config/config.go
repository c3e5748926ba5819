package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Pricing     PricingConfig
	Fulfillment FulfillmentConfig
	Production  ProductionConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

type PricingConfig struct {
	Currency              string
	DefaultUnitPrice      float64
	VolumeQtyThreshold    float64
	VolumeDiscountPct     float64
	FreeShippingThreshold float64
	FlatShippingFee       float64
}

type FulfillmentConfig struct {
	TransitDays            int
	ProductionLeadDefault  int
	ProductionLeadByType   map[string]int
	SubstitutionPriceSlack float64
}

type ProductionConfig struct {
	FinishHandlingDays int
	ShipHandlingDays   int
}

// ProductionLeadDays returns the production lead for an item type, falling
// back to the global default when the type has no override.
func (f FulfillmentConfig) ProductionLeadDays(itemType string) int {
	if days, ok := f.ProductionLeadByType[itemType]; ok {
		return days
	}
	return f.ProductionLeadDefault
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8084"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "factory"),
			Password:        getEnv("POSTGRES_PASSWORD", "factory"),
			DBName:          getEnv("POSTGRES_DB", "factory_core"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", false),
		},
		Pricing: PricingConfig{
			Currency:              getEnv("PRICING_CURRENCY", "EUR"),
			DefaultUnitPrice:      getEnvFloat("PRICING_DEFAULT_UNIT_PRICE", 12.0),
			VolumeQtyThreshold:    getEnvFloat("PRICING_VOLUME_QTY_THRESHOLD", 24),
			VolumeDiscountPct:     getEnvFloat("PRICING_VOLUME_DISCOUNT_PCT", 0.05),
			FreeShippingThreshold: getEnvFloat("PRICING_FREE_SHIPPING_THRESHOLD", 300.0),
			FlatShippingFee:       getEnvFloat("PRICING_FLAT_SHIPPING_FEE", 20.0),
		},
		Fulfillment: FulfillmentConfig{
			TransitDays:            getEnvInt("TRANSIT_DAYS_DEFAULT", 2),
			ProductionLeadDefault:  getEnvInt("PRODUCTION_LEAD_DAYS_DEFAULT", 30),
			ProductionLeadByType:   getEnvIntMap("PRODUCTION_LEAD_DAYS_BY_TYPE", map[string]int{"finished_good": 30}),
			SubstitutionPriceSlack: getEnvFloat("SUBSTITUTION_PRICE_SLACK_PCT", 0.15),
		},
		Production: ProductionConfig{
			FinishHandlingDays: getEnvInt("PRODUCTION_FINISH_HANDLING_DAYS", 1),
			ShipHandlingDays:   getEnvInt("PRODUCTION_SHIP_HANDLING_DAYS", 2),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvIntMap parses comma-separated "key=value" pairs, e.g.
// "finished_good=30,component=10".
func getEnvIntMap(key string, fallback map[string]int) map[string]int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	result := map[string]int{}
	for _, pair := range strings.Split(value, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if i, err := strconv.Atoi(parts[1]); err == nil {
			result[parts[0]] = i
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}
