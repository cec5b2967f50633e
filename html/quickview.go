package html

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"quickview.GO/api"
	"quickview.GO/core/app"
	"quickview.GO/service/quickview"
)

func init() {
	api.RegisterHTMLModule(func(e *echo.Echo, c *app.Container) {
		RegisterQuickViewHTMLRoutes(e, c.Popups, c.ViewOptions())
	})
}

// SizePlaceholder is the disabled first entry of the size select.
const SizePlaceholder = "Choose your size"

// PopupPage is the data passed to quickview.html.
type PopupPage struct {
	PopupID         string
	View            quickview.View
	SizePlaceholder string
	Redirect        string
}

// RegisterQuickViewHTMLRoutes serves the popup fragment a storefront
// injects into its overlay. Opening a product starts a fresh popup session.
func RegisterQuickViewHTMLRoutes(e *echo.Echo, popups *quickview.Popups, view quickview.ViewOptions) {
	if e.Renderer == nil {
		e.Renderer = NewTemplate()
	}

	// GET /quickview/:handle?popup=<id>
	e.GET("/quickview/:handle", func(c echo.Context) error {
		ss, err := popups.Open(c.Request().Context(), c.QueryParam("popup"), api.CartToken(c), c.Param("handle"))
		if errors.Is(err, quickview.ErrProductNotFound) {
			return c.String(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			log.Println("Quick view error:", err)
			return c.String(http.StatusBadGateway, "Product could not be loaded")
		}
		v, err := quickview.BuildView(ss, view)
		if err != nil {
			log.Println("Quick view error:", err)
			return c.String(http.StatusInternalServerError, "Product could not be rendered")
		}
		return c.Render(http.StatusOK, "quickview.html", PopupPage{
			PopupID:         ss.ID(),
			View:            v,
			SizePlaceholder: SizePlaceholder,
			Redirect:        quickview.CartPath,
		})
	})
}
