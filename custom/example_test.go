package custom

import (
	"context"
	"strings"
	"testing"

	gqlregistry "quickview.GO/graphql/registry"
)

func TestFormatPriceExtension(t *testing.T) {
	out, err := gqlregistry.Resolve(context.Background(), "formatPrice", map[string]interface{}{
		"amount":   float64(1250),
		"currency": "EUR",
		"locale":   "de-DE",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	price := out.(map[string]string)["price"]
	if !strings.Contains(price, "12,50") {
		t.Errorf("price = %q", price)
	}

	if _, err := gqlregistry.Resolve(context.Background(), "formatPrice", map[string]interface{}{}); err == nil {
		t.Error("missing amount: want error")
	}
}
