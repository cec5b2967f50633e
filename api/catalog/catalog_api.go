package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"quickview.GO/api"
	"quickview.GO/core/app"
	catalogRepo "quickview.GO/model/repository/catalog"
	catalogService "quickview.GO/service/catalog"
)

func init() {
	api.RegisterModule(func(g *echo.Group, c *app.Container) {
		if c.DB == nil {
			return
		}
		RegisterCatalogRoutes(g, catalogRepo.NewProductRepository(c.DB), c.Catalog)
	})
}

// RegisterCatalogRoutes sets up catalog maintenance endpoints. cached may be
// nil; when set, changed products are dropped from it.
func RegisterCatalogRoutes(apiGroup *echo.Group, repo *catalogRepo.ProductRepository, cached *catalogService.CachedSource) {
	g := apiGroup.Group("/catalog")

	// POST /api/catalog/import – storefront product documents (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()
		res, err := catalogService.Import(c.Request().Context(), repo, c.Request().Body)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			status := http.StatusBadRequest
			if res != nil {
				status = http.StatusInternalServerError
			}
			return c.JSON(status, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}
		if cached != nil && len(res.Handles) > 0 {
			cached.Invalidate(c.Request().Context(), res.Handles...)
		}

		warnings := res.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"total":               res.Total,
			"imported":            res.Imported,
			"skipped":             res.Skipped,
			"handles":             res.Handles,
			"warnings":            warnings,
			"request_duration_ms": duration,
		})
	})

	// GET /api/catalog/products – stored handles
	g.GET("/products", func(c echo.Context) error {
		handles, err := repo.Handles(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if handles == nil {
			handles = []string{}
		}
		return c.JSON(http.StatusOK, echo.Map{"handles": handles})
	})

	// DELETE /api/catalog/products/:handle
	g.DELETE("/products/:handle", func(c echo.Context) error {
		handle := c.Param("handle")
		if err := repo.Delete(c.Request().Context(), handle); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if cached != nil {
			cached.Invalidate(c.Request().Context(), handle)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
