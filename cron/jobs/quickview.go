package jobs

import (
	"context"
	"log"
	"time"

	"quickview.GO/core/app"
	"quickview.GO/cron"
)

// warmTimeout bounds a catalog warm run.
const warmTimeout = 2 * time.Minute

func init() {
	cron.Register("sessionspurge", "@every 1m", PurgeSessions)
	cron.Register("catalogwarm", "@hourly", WarmCatalog)
}

// PurgeSessions drops quick view popups left open past their TTL.
func PurgeSessions(args ...string) {
	c, err := app.Open()
	if err != nil {
		log.Printf("sessionspurge: %v", err)
		return
	}
	purgeSessions(c)
}

func purgeSessions(c *app.Container) int {
	n := c.Popups.Purge()
	if n > 0 {
		log.Printf("sessionspurge: dropped %d expired popups, %d open", n, c.Popups.Count())
	}
	return n
}

// WarmCatalog refreshes the cached products named in args, or the bundle
// products when none are given.
func WarmCatalog(args ...string) {
	c, err := app.Open()
	if err != nil {
		log.Printf("catalogwarm: %v", err)
		return
	}
	if err := warmCatalog(c, args); err != nil {
		log.Printf("catalogwarm: %v", err)
	}
}

func warmCatalog(c *app.Container, handles []string) error {
	if len(handles) == 0 {
		handles = c.BundleHandles()
	}
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()
	start := time.Now()
	if err := c.Catalog.Warm(ctx, handles); err != nil {
		return err
	}
	log.Printf("catalogwarm: %d products in %s", len(handles), time.Since(start))
	return nil
}
