package quickview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"quickview.GO/core/cache"
	quickviewService "quickview.GO/service/quickview"
)

type mapCatalog map[string]quickviewService.Product

func (m mapCatalog) Lookup(ctx context.Context, handle string) (quickviewService.Product, error) {
	p, ok := m[handle]
	if !ok {
		return quickviewService.Product{}, quickviewService.ErrProductNotFound
	}
	return p, nil
}

type memCart struct {
	mu    sync.Mutex
	lines []quickviewService.CartLine
	fail  map[string]error
}

func (c *memCart) Add(ctx context.Context, token string, line quickviewService.CartLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail[line.VariantID]; err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

func testCatalog() mapCatalog {
	tee := quickviewService.Product{
		Handle:      "classic-tee",
		Title:       "Classic Tee",
		Price:       2490,
		Description: "<p>Soft cotton tee.</p>",
		Images:      []string{"//cdn.example.com/tee.jpg"},
		Options: []quickviewService.ProductOption{
			{Position: 0, Name: "Color", Values: []string{"Red", "Black"}},
			{Position: 1, Name: "Size", Values: []string{"Small", "Medium", "Large"}},
		},
		Variants: []quickviewService.Variant{
			{ID: "red-small", Options: []string{"Red", "Small"}},
			{ID: "black-medium", Options: []string{"Black", "Medium"}},
			{ID: "red-large", Options: []string{"Red", "Large"}},
		},
	}
	jacket := quickviewService.Product{
		Handle:   quickviewService.DefaultBundleHandle,
		Title:    "Soft Winter Jacket",
		Options:  []quickviewService.ProductOption{{Position: 0, Name: "Title", Values: []string{"Default Title"}}},
		Variants: []quickviewService.Variant{{ID: "jacket-1", Options: []string{"Default Title"}}},
	}
	return mapCatalog{tee.Handle: tee, jacket.Handle: jacket}
}

func testServer(t *testing.T, cart *memCart) *echo.Echo {
	t.Helper()
	svc := quickviewService.NewService(testCatalog(), cart)
	popups := quickviewService.NewPopups(svc, cache.NewCache(), 0)
	e := echo.New()
	RegisterQuickViewRoutes(e.Group("/api"), popups, quickviewService.ViewOptions{Currency: "EUR", Locale: "de-DE"})
	return e
}

func do(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart", Value: "tok-1"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// popupBody mirrors PopupResponse with states and roles as plain strings.
type popupBody struct {
	PopupID string            `json:"popup_id"`
	State   string            `json:"state"`
	Chosen  map[string]string `json:"chosen"`
	Missing []struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"missing"`
	View struct {
		Price   string `json:"price"`
		Excerpt string `json:"excerpt"`
	} `json:"view"`
}

func openPopup(t *testing.T, e *echo.Echo) popupBody {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/quickview/popups", echo.Map{"handle": "classic-tee"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("open status = %d, body %s", rec.Code, rec.Body)
	}
	var resp popupBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func choose(t *testing.T, e *echo.Echo, popup string, position int, value string) *httptest.ResponseRecorder {
	t.Helper()
	return do(e, http.MethodPut, "/api/quickview/popups/"+popup+"/options/"+strconv.Itoa(position), echo.Map{"value": value})
}

func TestOpenPopup(t *testing.T) {
	e := testServer(t, &memCart{})
	resp := openPopup(t, e)
	if resp.PopupID == "" {
		t.Fatal("no popup id")
	}
	if resp.State != "partial" {
		t.Errorf("state = %v, want partial", resp.State)
	}
	if len(resp.Missing) != 1 || resp.Missing[0].Name != "Size" || resp.Missing[0].Role != "size" {
		t.Errorf("missing = %+v", resp.Missing)
	}
	if !strings.Contains(resp.View.Price, "24,90") || resp.View.Excerpt != "Soft cotton tee.…" {
		t.Errorf("view = %+v", resp.View)
	}
	if resp.Chosen["Color"] != "Red" {
		t.Errorf("chosen = %v, want first color pre-selected", resp.Chosen)
	}
}

func TestOpenPopup_IssuesCartCookie(t *testing.T) {
	e := testServer(t, &memCart{})
	req := httptest.NewRequest(http.MethodPost, "/api/quickview/popups", strings.NewReader(`{"handle":"classic-tee"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "cart=") {
		t.Errorf("Set-Cookie = %q, want a cart cookie", rec.Header().Get("Set-Cookie"))
	}
}

func TestOpenPopup_Errors(t *testing.T) {
	e := testServer(t, &memCart{})
	if rec := do(e, http.MethodPost, "/api/quickview/popups", echo.Map{"handle": "nope"}); rec.Code != http.StatusNotFound {
		t.Errorf("unknown product: %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/api/quickview/popups", echo.Map{}); rec.Code != http.StatusBadRequest {
		t.Errorf("no handle: %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/quickview/popups/unknown", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown popup: %d", rec.Code)
	}
}

func TestChooseAndConfirm_BlackMedium(t *testing.T) {
	cart := &memCart{}
	e := testServer(t, cart)
	id := openPopup(t, e).PopupID

	if rec := choose(t, e, id, 0, "Black"); rec.Code != http.StatusOK {
		t.Fatalf("choose color: %d %s", rec.Code, rec.Body)
	}
	rec := choose(t, e, id, 1, "Medium")
	if rec.Code != http.StatusOK {
		t.Fatalf("choose size: %d %s", rec.Code, rec.Body)
	}
	var state popupBody
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.State != "complete" {
		t.Errorf("state = %v, want complete", state.State)
	}

	rec = do(e, http.MethodPost, "/api/quickview/popups/"+id+"/confirm", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", rec.Code, rec.Body)
	}
	var out ConfirmResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.VariantID != "black-medium" || !out.Complete || out.Redirect != "/cart" {
		t.Errorf("confirm = %+v", out)
	}
	if len(out.Bundles) != 1 || !out.Bundles[0].Added || out.Bundles[0].VariantID != "jacket-1" {
		t.Errorf("bundles = %+v", out.Bundles)
	}
	if len(cart.lines) != 2 || cart.lines[0].VariantID != "black-medium" || cart.lines[1].VariantID != "jacket-1" {
		t.Errorf("cart = %+v", cart.lines)
	}
	if rec := do(e, http.MethodGet, "/api/quickview/popups/"+id, nil); rec.Code != http.StatusNotFound {
		t.Errorf("popup still open after confirm: %d", rec.Code)
	}
}

func TestConfirm_Incomplete(t *testing.T) {
	e := testServer(t, &memCart{})
	id := openPopup(t, e).PopupID
	rec := do(e, http.MethodPost, "/api/quickview/popups/"+id+"/confirm", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Error   string `json:"error"`
		Missing []struct {
			Name string `json:"name"`
		} `json:"missing"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "Please choose your size" || len(body.Missing) != 1 {
		t.Errorf("body = %+v", body)
	}
}

func TestConfirm_VariantNotFound(t *testing.T) {
	e := testServer(t, &memCart{})
	id := openPopup(t, e).PopupID
	choose(t, e, id, 0, "Black")
	choose(t, e, id, 1, "Small")
	if rec := do(e, http.MethodPost, "/api/quickview/popups/"+id+"/confirm", nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestConfirm_PrimaryNetworkFailure(t *testing.T) {
	cart := &memCart{fail: map[string]error{"red-large": errors.New("connection reset")}}
	e := testServer(t, cart)
	id := openPopup(t, e).PopupID
	choose(t, e, id, 1, "Large")
	if rec := do(e, http.MethodPost, "/api/quickview/popups/"+id+"/confirm", nil); rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if len(cart.lines) != 0 {
		t.Errorf("cart = %+v", cart.lines)
	}
}

func TestConfirm_BundleFailureIsPartial(t *testing.T) {
	cart := &memCart{fail: map[string]error{"jacket-1": errors.New("connection reset")}}
	e := testServer(t, cart)
	id := openPopup(t, e).PopupID
	choose(t, e, id, 0, "Black")
	choose(t, e, id, 1, "Medium")
	rec := do(e, http.MethodPost, "/api/quickview/popups/"+id+"/confirm", nil)
	if rec.Code != http.StatusMultiStatus {
		t.Fatalf("status = %d, want 207", rec.Code)
	}
	var out ConfirmResponse
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Complete || len(out.Bundles) != 1 || out.Bundles[0].Added || out.Bundles[0].Error == "" {
		t.Errorf("confirm = %+v", out)
	}
}

func TestChoose_Invalid(t *testing.T) {
	e := testServer(t, &memCart{})
	id := openPopup(t, e).PopupID
	if rec := choose(t, e, id, 1, "Choose your size"); rec.Code != http.StatusBadRequest {
		t.Errorf("placeholder: %d", rec.Code)
	}
	if rec := choose(t, e, id, 5, "Red"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad position: %d", rec.Code)
	}
	if rec := do(e, http.MethodPut, "/api/quickview/popups/"+id+"/options/x", echo.Map{"value": "Red"}); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric position: %d", rec.Code)
	}
}

func TestClosePopup(t *testing.T) {
	e := testServer(t, &memCart{})
	id := openPopup(t, e).PopupID
	if rec := do(e, http.MethodDelete, "/api/quickview/popups/"+id, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/quickview/popups/"+id, nil); rec.Code != http.StatusNotFound {
		t.Errorf("after close: %d", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&quickviewService.IncompleteSelectionError{}, http.StatusUnprocessableEntity},
		{quickviewService.ErrVariantNotFound, http.StatusNotFound},
		{&quickviewService.NetworkError{Op: "x", Err: errors.New("y")}, http.StatusBadGateway},
		{quickviewService.ErrAlreadyResolved, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
