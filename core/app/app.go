package app

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"quickview.GO/config"
	"quickview.GO/core/cache"
	"quickview.GO/core/registry"
	cartRepo "quickview.GO/model/repository/cart"
	catalogRepo "quickview.GO/model/repository/catalog"
	"quickview.GO/service/cart"
	"quickview.GO/service/catalog"
	"quickview.GO/service/quickview"
)

// Container holds the quick view services wired from configuration.
type Container struct {
	Config  *config.Config
	DB      *gorm.DB
	Catalog *catalog.CachedSource
	Cart    quickview.Cart
	Service *quickview.Service
	Popups  *quickview.Popups

	// Store is the database cart, nil when no database is configured.
	Store *cart.StoreCart
}

// New wires the catalog source, cart backend, bundle rules and popup
// sessions selected by cfg. db may be nil when neither CATALOG_SOURCE nor
// CART_BACKEND is "db"; rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Container, error) {
	client := &http.Client{Timeout: cfg.RequestTimeout}
	c := &Container{Config: cfg, DB: db}
	if db != nil {
		c.Store = cart.NewStoreCart(cartRepo.NewCartRepository(db))
	}

	var source quickview.Catalog
	switch cfg.CatalogSource {
	case config.SourceDB:
		if db == nil {
			return nil, fmt.Errorf("CATALOG_SOURCE=db needs a database")
		}
		source = catalog.NewRepositorySource(catalogRepo.NewProductRepository(db))
	case config.SourceHTTP:
		source = catalog.NewHTTPSource(cfg.StorefrontURL, client)
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	c.Catalog = catalog.NewCachedSource(source, cache.NewCache(), rdb, cfg.CatalogCacheTTL)

	switch cfg.CartBackend {
	case config.SourceDB:
		if c.Store == nil {
			return nil, fmt.Errorf("CART_BACKEND=db needs a database")
		}
		c.Cart = c.Store
	case config.SourceHTTP:
		c.Cart = cart.NewHTTPCart(cfg.StorefrontURL, client)
	default:
		return nil, fmt.Errorf("unknown CART_BACKEND %q", cfg.CartBackend)
	}

	rules := quickview.DefaultBundleRules(cfg.BundleHandle)
	if cfg.BundleRulesFile != "" {
		loaded, err := quickview.LoadBundleRules(cfg.BundleRulesFile)
		if err != nil {
			return nil, fmt.Errorf("bundle rules: %w", err)
		}
		rules = loaded
		log.Printf("Loaded %d bundle rules from %s", len(rules), cfg.BundleRulesFile)
	}

	c.Service = quickview.NewService(c.Catalog, c.Cart,
		quickview.WithTimeout(cfg.RequestTimeout),
		quickview.WithBundleRules(rules),
	)
	c.Popups = quickview.NewPopups(c.Service, cache.NewCache(), cfg.SessionTTL)
	return c, nil
}

// ViewOptions returns the configured presentation settings.
func (c *Container) ViewOptions() quickview.ViewOptions {
	return quickview.ViewOptions{
		Currency:     c.Config.PriceCurrency,
		Locale:       c.Config.PriceLocale,
		ExcerptLimit: c.Config.DescriptionLimit,
	}
}

// BundleHandles lists the distinct products the bundle rules may add.
func (c *Container) BundleHandles() []string {
	seen := make(map[string]bool)
	var handles []string
	for _, r := range c.Service.Rules() {
		if !seen[r.Handle] {
			seen[r.Handle] = true
			handles = append(handles, r.Handle)
		}
	}
	return handles
}

var mu sync.Mutex

// Get returns the process-wide container, building it from config.AppConfig
// and config.RedisClient on first use.
func Get(db *gorm.DB) (*Container, error) {
	mu.Lock()
	defer mu.Unlock()
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyApp); ok && v != nil {
		return v.(*Container), nil
	}
	c, err := New(config.LoadAppConfig(), db, config.RedisClient)
	if err != nil {
		return nil, err
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyApp, c)
	return c, nil
}

// Open returns the process-wide container for commands and jobs. It
// connects to the database only when a backend needs one.
func Open() (*Container, error) {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyApp); ok && v != nil {
		return v.(*Container), nil
	}
	cfg := config.LoadAppConfig()
	var db *gorm.DB
	if cfg.CatalogSource == config.SourceDB || cfg.CartBackend == config.SourceDB {
		var err error
		if db, err = config.NewDB(); err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
	}
	return Get(db)
}

// MustGet is Get for route registration, where a wiring error is fatal.
func MustGet(db *gorm.DB) *Container {
	c, err := Get(db)
	if err != nil {
		log.Fatalf("quickview: %v", err)
	}
	return c
}

// Set installs c as the process-wide container.
func Set(c *Container) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.SetGlobal(registry.KeyApp, c)
}
