package config

import (
	"strings"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

const (
	SourceHTTP = "http"
	SourceDB   = "db"
)

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// StorefrontURL is the base of the storefront's product and cart
	// endpoints (/products/<handle>.js, /cart/add.js).
	StorefrontURL string
	CatalogSource string
	CartBackend   string

	BundleHandle    string
	BundleRulesFile string

	RequestTimeout  time.Duration
	SessionTTL      time.Duration
	CatalogCacheTTL time.Duration

	PriceCurrency    string
	PriceLocale      string
	DescriptionLimit int
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		AppName:          GetEnv("APP_NAME", "quickview"),
		Port:             GetEnv("PORT", "8080"),
		Env:              GetEnv("APP_ENV", "production"),
		Debug:            GetEnv("DEBUG", "") == "true",
		StorefrontURL:    strings.TrimRight(GetEnv("STOREFRONT_URL", "http://localhost:8080"), "/"),
		CatalogSource:    strings.ToLower(GetEnv("CATALOG_SOURCE", SourceHTTP)),
		CartBackend:      strings.ToLower(GetEnv("CART_BACKEND", SourceHTTP)),
		BundleHandle:     GetEnv("BUNDLE_HANDLE", "soft-winter-jacket"),
		BundleRulesFile:  GetEnv("BUNDLE_RULES_FILE", ""),
		RequestTimeout:   GetEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		SessionTTL:       GetEnvDuration("SESSION_TTL", 30*time.Minute),
		CatalogCacheTTL:  GetEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		PriceCurrency:    GetEnv("PRICE_CURRENCY", "EUR"),
		PriceLocale:      GetEnv("PRICE_LOCALE", "de-DE"),
		DescriptionLimit: GetEnvInt("DESCRIPTION_LIMIT", 180),
	}
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = Load()
	})
	return AppConfig
}
