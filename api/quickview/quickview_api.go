package quickview

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"quickview.GO/api"
	"quickview.GO/core/app"
	quickviewService "quickview.GO/service/quickview"
)

func init() {
	api.RegisterModule(func(g *echo.Group, c *app.Container) {
		RegisterQuickViewRoutes(g, c.Popups, c.ViewOptions())
	})
}

const CartRedirect = quickviewService.CartPath

type openRequest struct {
	Handle  string `json:"handle"`
	PopupID string `json:"popup_id"`
}

type chooseRequest struct {
	Value string `json:"value"`
}

// PopupResponse describes an open popup.
type PopupResponse struct {
	PopupID string                           `json:"popup_id"`
	State   quickviewService.SelectionState  `json:"state"`
	Chosen  map[string]string                `json:"chosen"`
	Missing []quickviewService.MissingOption `json:"missing"`
	View    quickviewService.View            `json:"view"`
}

// BundleResponse reports one fired bundle rule.
type BundleResponse struct {
	Rule      string `json:"rule"`
	Handle    string `json:"handle"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
	Added     bool   `json:"added"`
	Error     string `json:"error,omitempty"`
}

// ConfirmResponse is the body of a successful confirm.
type ConfirmResponse struct {
	Handle    string           `json:"handle"`
	VariantID string           `json:"variant_id"`
	Bundles   []BundleResponse `json:"bundles"`
	Complete  bool             `json:"complete"`
	Redirect  string           `json:"redirect"`
}

// RegisterQuickViewRoutes sets up the popup session endpoints.
func RegisterQuickViewRoutes(apiGroup *echo.Group, popups *quickviewService.Popups, view quickviewService.ViewOptions) {
	g := apiGroup.Group("/quickview/popups")

	// POST /api/quickview/popups – open (or replace) a popup for a product
	g.POST("", func(c echo.Context) error {
		var body openRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Handle == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "handle is required"})
		}
		ss, err := popups.Open(c.Request().Context(), body.PopupID, api.CartToken(c), body.Handle)
		if err != nil {
			return errorJSON(c, err)
		}
		return popupJSON(c, http.StatusCreated, ss, view)
	})

	// GET /api/quickview/popups/:popup
	g.GET("/:popup", func(c echo.Context) error {
		ss, err := popups.Get(c.Param("popup"))
		if err != nil {
			return errorJSON(c, err)
		}
		return popupJSON(c, http.StatusOK, ss, view)
	})

	// PUT /api/quickview/popups/:popup/options/:position – pill click or size pick
	g.PUT("/:popup/options/:position", func(c echo.Context) error {
		position, err := strconv.Atoi(c.Param("position"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "position must be an integer"})
		}
		var body chooseRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		ss, err := popups.Get(c.Param("popup"))
		if err != nil {
			return errorJSON(c, err)
		}
		if err := ss.Choose(position, body.Value); err != nil {
			return errorJSON(c, err)
		}
		return popupJSON(c, http.StatusOK, ss, view)
	})

	// POST /api/quickview/popups/:popup/confirm – add to cart
	g.POST("/:popup/confirm", func(c echo.Context) error {
		start := time.Now()
		ss, err := popups.Get(c.Param("popup"))
		if err != nil {
			return errorJSON(c, err)
		}
		res, err := ss.Confirm(c.Request().Context())
		if err != nil {
			return errorJSON(c, err)
		}
		popups.Close(ss.ID())

		out := ConfirmResponse{
			Handle:    res.Handle,
			VariantID: res.Variant.ID,
			Bundles:   make([]BundleResponse, 0, len(res.Bundles)),
			Complete:  res.Complete(),
			Redirect:  CartRedirect,
		}
		for _, b := range res.Bundles {
			br := BundleResponse{Rule: b.Rule, Handle: b.Handle, VariantID: b.VariantID, Quantity: b.Quantity, Added: b.Added()}
			if b.Err != nil {
				br.Error = b.Err.Error()
			}
			out.Bundles = append(out.Bundles, br)
		}
		c.Response().Header().Set("X-Confirm-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		if !out.Complete {
			return c.JSON(http.StatusMultiStatus, out)
		}
		return c.JSON(http.StatusOK, out)
	})

	// DELETE /api/quickview/popups/:popup – overlay or "×" click
	g.DELETE("/:popup", func(c echo.Context) error {
		popups.Close(c.Param("popup"))
		return c.NoContent(http.StatusNoContent)
	})
}

func popupJSON(c echo.Context, status int, ss *quickviewService.Session, opts quickviewService.ViewOptions) error {
	v, err := quickviewService.BuildView(ss, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	missing := ss.Missing()
	if missing == nil {
		missing = []quickviewService.MissingOption{}
	}
	return c.JSON(status, PopupResponse{
		PopupID: ss.ID(),
		State:   ss.State(),
		Chosen:  ss.Chosen().ByName(),
		Missing: missing,
		View:    v,
	})
}

// StatusFor maps quick view errors to HTTP status codes.
func StatusFor(err error) int {
	var incomplete *quickviewService.IncompleteSelectionError
	switch {
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quickviewService.ErrSessionNotFound),
		errors.Is(err, quickviewService.ErrProductNotFound),
		errors.Is(err, quickviewService.ErrVariantNotFound):
		return http.StatusNotFound
	case errors.Is(err, quickviewService.ErrUnknownPosition),
		errors.Is(err, quickviewService.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, quickviewService.ErrAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, quickviewService.ErrNetwork),
		errors.Is(err, quickviewService.ErrInvalidProduct):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	body := echo.Map{"error": err.Error()}
	var incomplete *quickviewService.IncompleteSelectionError
	if errors.As(err, &incomplete) {
		body["error"] = incomplete.Prompt()
		body["missing"] = incomplete.Missing
	}
	return c.JSON(StatusFor(err), body)
}
