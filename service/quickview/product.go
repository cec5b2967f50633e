package quickview

import (
	"fmt"
	"strings"
)

// Product is a catalog lookup result as consumed by the quick view.
type Product struct {
	Handle      string          `json:"handle"`
	Title       string          `json:"title"`
	Price       int64           `json:"price"` // minor currency units
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Options     []ProductOption `json:"options"`
	Variants    []Variant       `json:"variants"`
}

// ProductOption is one selectable dimension. Position is the 0-based index
// into every variant's Options slice.
type ProductOption struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Values   []string `json:"values"`
}

// Variant is one purchasable combination, one value per option position.
type Variant struct {
	ID      string   `json:"id"`
	Options []string `json:"options"`
}

// Validate checks the structural invariants the resolver relies on.
func (p Product) Validate() error {
	for i, opt := range p.Options {
		if opt.Position != i {
			return fmt.Errorf("%w: option %q has position %d, want %d", ErrInvalidProduct, opt.Name, opt.Position, i)
		}
		if len(opt.Values) == 0 {
			return fmt.Errorf("%w: option %q has no values", ErrInvalidProduct, opt.Name)
		}
	}
	seen := make(map[string]string, len(p.Variants))
	for _, v := range p.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: variant without id", ErrInvalidProduct)
		}
		if len(v.Options) != len(p.Options) {
			return fmt.Errorf("%w: variant %s has %d option values, product has %d options",
				ErrInvalidProduct, v.ID, len(v.Options), len(p.Options))
		}
		key := strings.Join(v.Options, "\x00")
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%w: variants %s and %s share options %v", ErrInvalidProduct, other, v.ID, v.Options)
		}
		seen[key] = v.ID
	}
	return nil
}

// FirstVariant returns the variant at index 0.
func (p Product) FirstVariant() (Variant, bool) {
	if len(p.Variants) == 0 {
		return Variant{}, false
	}
	return p.Variants[0], true
}
