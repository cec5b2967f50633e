package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quickview.GO/service/quickview"
)

// CookieName is the storefront cookie carrying the cart token.
const CookieName = "cart"

// HTTPCart adds lines through the storefront's POST {base}/cart/add.js.
type HTTPCart struct {
	base   string
	client *http.Client
}

func NewHTTPCart(baseURL string, client *http.Client) *HTTPCart {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCart{base: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *HTTPCart) Add(ctx context.Context, token string, line quickview.CartLine) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, line.Quantity)
	}
	body, err := json.Marshal(line)
	if err != nil {
		return err
	}
	u := c.base + "/cart/add.js"
	op := "POST " + u
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &quickview.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &quickview.NetworkError{Op: op, Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
