package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickview.GO/service/quickview"
)

type mapCatalog map[string]quickview.Product

func (m mapCatalog) Lookup(ctx context.Context, handle string) (quickview.Product, error) {
	if p, ok := m[handle]; ok {
		return p, nil
	}
	return quickview.Product{}, quickview.ErrProductNotFound
}

type recordingCart struct{ lines []quickview.CartLine }

func (c *recordingCart) Add(ctx context.Context, token string, line quickview.CartLine) error {
	c.lines = append(c.lines, line)
	return nil
}

func testService(cart *recordingCart) *quickview.Service {
	return quickview.NewService(mapCatalog{
		"classic-tee": {
			Handle: "classic-tee",
			Title:  "Classic Tee",
			Options: []quickview.ProductOption{
				{Position: 0, Name: "Color", Values: []string{"Red", "Black"}},
				{Position: 1, Name: "Size", Values: []string{"Small", "Medium"}},
			},
			Variants: []quickview.Variant{
				{ID: "red-small", Options: []string{"Red", "Small"}},
				{ID: "black-medium", Options: []string{"Black", "Medium"}},
			},
		},
		quickview.DefaultBundleHandle: {
			Handle:   quickview.DefaultBundleHandle,
			Options:  []quickview.ProductOption{{Position: 0, Name: "Title", Values: []string{"Default Title"}}},
			Variants: []quickview.Variant{{ID: "jacket-1", Options: []string{"Default Title"}}},
		},
	}, cart)
}

func resetResolveFlags(handle string, add bool, cart string, sets ...string) {
	resolveHandle, resolveAdd, resolveCart, resolveSets = handle, add, cart, sets
}

func TestRunResolve_Evaluate(t *testing.T) {
	cart := &recordingCart{}
	resetResolveFlags("classic-tee", false, "", "color=Black", "Size=Medium")
	out := &bytes.Buffer{}
	if err := runResolve(context.Background(), out, testService(cart)); err != nil {
		t.Fatalf("runResolve: %v", err)
	}
	want := "variant black-medium\nbundle black-medium: soft-winter-jacket\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if len(cart.lines) != 0 {
		t.Errorf("cart touched: %+v", cart.lines)
	}
}

func TestRunResolve_Incomplete(t *testing.T) {
	resetResolveFlags("classic-tee", false, "", "Color=Red")
	out := &bytes.Buffer{}
	err := runResolve(context.Background(), out, testService(&recordingCart{}))
	if !errors.Is(err, quickview.ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	if strings.TrimSpace(out.String()) != "Please choose your size" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunResolve_Add(t *testing.T) {
	cart := &recordingCart{}
	resetResolveFlags("classic-tee", true, "tok-1", "Color=Black", "Size=Medium")
	out := &bytes.Buffer{}
	if err := runResolve(context.Background(), out, testService(cart)); err != nil {
		t.Fatalf("runResolve: %v", err)
	}
	if len(cart.lines) != 2 || cart.lines[0].VariantID != "black-medium" || cart.lines[1].VariantID != "jacket-1" {
		t.Errorf("cart = %+v", cart.lines)
	}
	if !strings.Contains(out.String(), "added bundle soft-winter-jacket") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunResolve_BadInput(t *testing.T) {
	svc := testService(&recordingCart{})
	resetResolveFlags("classic-tee", true, "")
	if err := runResolve(context.Background(), &bytes.Buffer{}, svc); err == nil {
		t.Error("--add without --cart: want error")
	}
	resetResolveFlags("classic-tee", false, "", "Color")
	if err := runResolve(context.Background(), &bytes.Buffer{}, svc); err == nil {
		t.Error("--set without '=': want error")
	}
	resetResolveFlags("classic-tee", false, "", "Fabric=Wool")
	if err := runResolve(context.Background(), &bytes.Buffer{}, svc); !errors.Is(err, quickview.ErrUnknownPosition) {
		t.Errorf("unknown option: err = %v", err)
	}
	resetResolveFlags("classic-tee", false, "", "Size=Choose your size")
	if err := runResolve(context.Background(), &bytes.Buffer{}, svc); !errors.Is(err, quickview.ErrInvalidValue) {
		t.Errorf("placeholder: err = %v", err)
	}
}

func TestCatalogImportCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "import.db"))
	file := filepath.Join(dir, "products.json")
	doc := `[{"handle": "classic-tee", "title": "Classic Tee",
	  "options": [{"name": "Size", "values": ["Small"]}],
	  "variants": [{"id": 1, "options": ["Small"]}]}]`
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"catalog:import", "--file", file, "--migrate"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 1 of 1 products") {
		t.Errorf("output = %q", out.String())
	}
}
