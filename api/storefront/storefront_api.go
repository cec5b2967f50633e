package storefront

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"quickview.GO/api"
	"quickview.GO/core/app"
	catalogRepo "quickview.GO/model/repository/catalog"
	cartService "quickview.GO/service/cart"
	catalogService "quickview.GO/service/catalog"
	"quickview.GO/service/quickview"
)

func init() {
	api.RegisterStoreRoute(func(e *echo.Echo, c *app.Container) {
		RegisterStorefrontRoutes(e, catalogRepo.NewProductRepository(c.DB), c.Store)
	})
}

// CartResponse is the body of GET /cart.js.
type CartResponse struct {
	Token     string               `json:"token"`
	ItemCount int                  `json:"item_count"`
	Items     []quickview.CartLine `json:"items"`
}

// RegisterStorefrontRoutes serves the storefront product and cart endpoints
// from the database, so the HTTP catalog source and cart can point here.
func RegisterStorefrontRoutes(e *echo.Echo, products *catalogRepo.ProductRepository, store *cartService.StoreCart) {
	// GET /products/:handle.js
	e.GET("/products/:file", func(c echo.Context) error {
		handle, ok := strings.CutSuffix(c.Param("file"), ".js")
		if !ok || handle == "" {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		found, err := products.FindByHandle(c.Request().Context(), handle)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, catalogService.EncodeProduct(catalogService.FromEntity(found)))
	})

	// POST /cart/add.js – {"id": "<variant>", "quantity": 1}
	e.POST("/cart/add.js", func(c echo.Context) error {
		var line quickview.CartLine
		if err := c.Bind(&line); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if line.Quantity == 0 {
			line.Quantity = 1
		}
		if err := store.Add(c.Request().Context(), api.CartToken(c), line); err != nil {
			if errors.Is(err, cartService.ErrInvalidQuantity) || line.VariantID == "" {
				return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, line)
	})

	// GET /cart.js
	e.GET("/cart.js", func(c echo.Context) error {
		token := api.CartToken(c)
		lines, err := store.Lines(c.Request().Context(), token)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		resp := CartResponse{Token: token, Items: []quickview.CartLine{}}
		for _, l := range lines {
			resp.Items = append(resp.Items, l)
			resp.ItemCount += l.Quantity
		}
		return c.JSON(http.StatusOK, resp)
	})
}
