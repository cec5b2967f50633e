package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"quickview.GO/config"
)

func testConfig() *config.Config {
	return &config.Config{
		StorefrontURL:    "http://localhost:1",
		CatalogSource:    config.SourceHTTP,
		CartBackend:      config.SourceHTTP,
		BundleHandle:     "soft-winter-jacket",
		RequestTimeout:   time.Second,
		SessionTTL:       time.Minute,
		CatalogCacheTTL:  time.Minute,
		PriceCurrency:    "EUR",
		PriceLocale:      "de-DE",
		DescriptionLimit: 180,
	}
}

func TestNew_HTTPDefaults(t *testing.T) {
	c, err := New(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Store != nil {
		t.Error("Store set without a database")
	}
	if got := c.BundleHandles(); len(got) != 1 || got[0] != "soft-winter-jacket" {
		t.Errorf("BundleHandles = %v", got)
	}
	if v := c.ViewOptions(); v.Locale != "de-DE" || v.ExcerptLimit != 180 {
		t.Errorf("ViewOptions = %+v", v)
	}
}

func TestNew_DBWithoutDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogSource = config.SourceDB
	if _, err := New(cfg, nil, nil); err == nil {
		t.Error("want error for db catalog without database")
	}
	cfg = testConfig()
	cfg.CartBackend = "carrier-pigeon"
	if _, err := New(cfg, nil, nil); err == nil {
		t.Error("want error for unknown cart backend")
	}
}

func TestNew_DBBackendsAndRulesFile(t *testing.T) {
	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "app.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	rulesPath := filepath.Join(dir, "rules.yaml")
	rules := "rules:\n  - name: a\n    when: {color: Black}\n    handle: scarf\n  - name: b\n    expr: 'size == \"Medium\"'\n    handle: scarf\n"
	if err := os.WriteFile(rulesPath, []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.CatalogSource = config.SourceDB
	cfg.CartBackend = config.SourceDB
	cfg.BundleRulesFile = rulesPath
	c, err := New(cfg, db, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Cart != c.Store {
		t.Error("db cart backend should use the store cart")
	}
	if got := c.BundleHandles(); len(got) != 1 || got[0] != "scarf" {
		t.Errorf("BundleHandles = %v, want [scarf]", got)
	}
}
