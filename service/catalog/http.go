package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"quickview.GO/service/quickview"
)

// HTTPSource looks products up on the storefront at
// GET {base}/products/{handle}.js.
type HTTPSource struct {
	base   string
	client *http.Client
}

func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) Lookup(ctx context.Context, handle string) (quickview.Product, error) {
	u := s.base + "/products/" + url.PathEscape(handle) + ".js"
	op := "GET " + u
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return quickview.Product{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return quickview.Product{}, &quickview.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return quickview.Product{}, fmt.Errorf("%s: %w", handle, quickview.ErrProductNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return quickview.Product{}, &quickview.NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := readDocument(resp.Body)
	if err != nil {
		return quickview.Product{}, &quickview.NetworkError{Op: op, Err: err}
	}
	p, err := DecodeProduct(doc)
	if err != nil {
		return quickview.Product{}, fmt.Errorf("%s: %w", handle, err)
	}
	if p.Handle == "" {
		p.Handle = handle
	}
	return p, nil
}
