//go:build !cli
// +build !cli

package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"quickview.GO/api"
	_ "quickview.GO/api/catalog"
	graphqlApi "quickview.GO/api/graphql"
	_ "quickview.GO/api/quickview"
	_ "quickview.GO/api/storefront"
	"quickview.GO/config"
	"quickview.GO/core/app"
	"quickview.GO/core/auth"
	"quickview.GO/cron"
	_ "quickview.GO/cron/jobs"
	_ "quickview.GO/custom"
	_ "quickview.GO/html"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()
	config.InitRedis()
	log.Println(config.PingRedis(config.RedisCtx()))

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			if cfg.Debug {
				log.Printf("Request duration: %d ms", duration)
			}
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware(db))
	qv := app.MustGet(db)
	api.ApplyModules(apiGroup, qv)
	api.ApplyRoutes(e, qv)
	graphqlApi.RegisterGraphQLRoutes(e, qv)

	// Popup sessions live in this process, so their purge job runs here too.
	if config.GetEnv("CRON_IN_PROCESS", "true") == "true" {
		c := cron.StartCron()
		defer c.Stop()
	}

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "doom", "larry3d", "puffy"}
	figure.NewFigure("QuickView", fonts[rand.Intn(len(fonts))], true).Print()
	fmt.Printf("%s (%s)\n", cfg.AppName, cfg.Env)

	log.Printf("Server running on :%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
