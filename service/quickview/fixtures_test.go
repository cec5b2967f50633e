package quickview

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	colors = []string{"Red", "Black"}
	sizes  = []string{"Small", "Medium", "Large"}
)

func variantID(values ...string) string {
	return "v-" + strings.ToLower(strings.Join(values, "-"))
}

// teeProduct has Color=[Red,Black], Size=[Small,Medium,Large] and every
// combination except those listed in skip.
func teeProduct(skip ...string) Product {
	p := Product{
		Handle:      "classic-tee",
		Title:       "Classic Tee",
		Price:       2490,
		Description: "<p>Soft <b>cotton</b> tee.</p>",
		Images:      []string{"//cdn.example.com/tee.jpg"},
		Options: []ProductOption{
			{Position: 0, Name: "Color", Values: colors},
			{Position: 1, Name: "Size", Values: sizes},
		},
	}
	for _, c := range colors {
	next:
		for _, s := range sizes {
			id := variantID(c, s)
			for _, sk := range skip {
				if sk == id {
					continue next
				}
			}
			p.Variants = append(p.Variants, Variant{ID: id, Options: []string{c, s}})
		}
	}
	return p
}

func jacketProduct() Product {
	return Product{
		Handle:  DefaultBundleHandle,
		Title:   "Soft Winter Jacket",
		Price:   8900,
		Options: []ProductOption{{Position: 0, Name: "Title", Values: []string{"Default Title"}}},
		Variants: []Variant{
			{ID: "jacket-1", Options: []string{"Default Title"}},
		},
	}
}

type fakeCatalog struct {
	mu       sync.Mutex
	products map[string]Product
	errs     map[string]error
	lookups  []string
}

func newFakeCatalog(products ...Product) *fakeCatalog {
	c := &fakeCatalog{products: map[string]Product{}, errs: map[string]error{}}
	for _, p := range products {
		c.products[p.Handle] = p
	}
	return c
}

func (c *fakeCatalog) Lookup(ctx context.Context, handle string) (Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups = append(c.lookups, handle)
	if err := c.errs[handle]; err != nil {
		return Product{}, err
	}
	p, ok := c.products[handle]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

type fakeCart struct {
	mu    sync.Mutex
	lines []CartLine
	fail  map[string]error
}

func newFakeCart() *fakeCart {
	return &fakeCart{fail: map[string]error{}}
}

func (c *fakeCart) Add(ctx context.Context, token string, line CartLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail[line.VariantID]; err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

var errConnRefused = errors.New("dial tcp: connection refused")
