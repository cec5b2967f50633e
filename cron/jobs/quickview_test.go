package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"quickview.GO/core/app"
	"quickview.GO/core/cache"
	"quickview.GO/cron"
	catalogService "quickview.GO/service/catalog"
	"quickview.GO/service/quickview"
)

type countingCatalog struct {
	mu      sync.Mutex
	lookups map[string]int
}

func (c *countingCatalog) Lookup(ctx context.Context, handle string) (quickview.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups[handle]++
	return quickview.Product{
		Handle:   handle,
		Title:    handle,
		Options:  []quickview.ProductOption{{Position: 0, Name: "Title", Values: []string{"Default"}}},
		Variants: []quickview.Variant{{ID: handle + "-1", Options: []string{"Default"}}},
	}, nil
}

type nopCart struct{}

func (nopCart) Add(context.Context, string, quickview.CartLine) error { return nil }

func testContainer(ttl time.Duration) (*app.Container, *countingCatalog) {
	src := &countingCatalog{lookups: make(map[string]int)}
	cached := catalogService.NewCachedSource(src, cache.NewCache(), nil, time.Minute)
	svc := quickview.NewService(cached, nopCart{})
	return &app.Container{
		Catalog: cached,
		Cart:    nopCart{},
		Service: svc,
		Popups:  quickview.NewPopups(svc, cache.NewCache(), ttl),
	}, src
}

func TestJobsRegistered(t *testing.T) {
	jobs := cron.Jobs()
	for _, name := range []string{"sessionspurge", "catalogwarm"} {
		if _, ok := jobs[name]; !ok {
			t.Errorf("job %s not registered", name)
		}
	}
}

func TestPurgeSessions(t *testing.T) {
	c, _ := testContainer(10 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if _, err := c.Popups.Open(context.Background(), "", "cart-1", "gift-card"); err != nil {
			t.Fatalf("Open: %v", err)
		}
	}
	time.Sleep(30 * time.Millisecond)
	if n := purgeSessions(c); n != 3 {
		t.Errorf("purged %d, want 3", n)
	}
	if c.Popups.Count() != 0 {
		t.Errorf("Count = %d, want 0", c.Popups.Count())
	}
}

func TestWarmCatalog_DefaultsToBundleHandles(t *testing.T) {
	c, src := testContainer(time.Minute)
	if err := warmCatalog(c, nil); err != nil {
		t.Fatalf("warmCatalog: %v", err)
	}
	if src.lookups[quickview.DefaultBundleHandle] != 1 {
		t.Errorf("lookups = %v, want one for the bundle product", src.lookups)
	}

	if err := warmCatalog(c, []string{"classic-tee", "gift-card"}); err != nil {
		t.Fatalf("warmCatalog: %v", err)
	}
	if src.lookups["classic-tee"] != 1 || src.lookups["gift-card"] != 1 {
		t.Errorf("lookups = %v", src.lookups)
	}
}
