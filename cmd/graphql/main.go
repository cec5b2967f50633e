// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"quickview.GO/api"
	graphqlApi "quickview.GO/api/graphql"
	"quickview.GO/config"
	"quickview.GO/core/app"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()
	config.InitRedis()
	log.Println(config.PingRedis(config.RedisCtx()))

	// The database is only needed when a backend is stored locally.
	var db *gorm.DB
	if cfg.CatalogSource == config.SourceDB || cfg.CartBackend == config.SourceDB {
		var err error
		if db, err = config.NewDB(); err != nil {
			log.Fatal("db:", err)
		}
	}

	e := echo.New()
	qv := app.MustGet(db)
	graphqlApi.RegisterGraphQLRoutes(e, qv)
	api.ApplyRoutes(e, qv)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("QuickView GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", cfg.Port, cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
