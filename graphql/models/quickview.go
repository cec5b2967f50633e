package models

import (
	"strings"

	"quickview.GO/service/quickview"
)

type OptionValue struct {
	Value  string  `json:"value"`
	Swatch *string `json:"swatch,omitempty"`
}

type OptionControl struct {
	Position     int32          `json:"position"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Values       []*OptionValue `json:"values"`
	DefaultValue *string        `json:"defaultValue,omitempty"`
	Rendered     bool           `json:"rendered"`
}

type QuickView struct {
	Handle     string           `json:"handle"`
	Title      string           `json:"title"`
	Price      string           `json:"price"`
	PriceMinor int32            `json:"priceMinor"`
	Excerpt    string           `json:"excerpt"`
	Image      *string          `json:"image,omitempty"`
	Controls   []*OptionControl `json:"controls"`
}

type MissingOption struct {
	Position int32  `json:"position"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type BundleRule struct {
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Quantity int32  `json:"quantity"`
}

type Resolution struct {
	State     string           `json:"state"`
	VariantID *string          `json:"variantId,omitempty"`
	Missing   []*MissingOption `json:"missing"`
	Prompt    *string          `json:"prompt,omitempty"`
	Bundles   []*BundleRule    `json:"bundles"`
}

type BundleLine struct {
	Rule      string  `json:"rule"`
	Handle    string  `json:"handle"`
	Quantity  int32   `json:"quantity"`
	VariantID *string `json:"variantId,omitempty"`
	Added     bool    `json:"added"`
	Error     *string `json:"error,omitempty"`
}

type AddToCartResult struct {
	VariantID string        `json:"variantId"`
	Bundles   []*BundleLine `json:"bundles"`
	Complete  bool          `json:"complete"`
	Redirect  string        `json:"redirect"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Enum converts a state or role name to its schema enum value.
func Enum(s interface{ String() string }) string {
	return strings.ToUpper(s.String())
}

func FromView(v quickview.View) *QuickView {
	out := &QuickView{
		Handle:     v.Handle,
		Title:      v.Title,
		Price:      v.Price,
		PriceMinor: int32(v.PriceMinor),
		Excerpt:    v.Excerpt,
		Image:      optional(v.Image),
		Controls:   make([]*OptionControl, len(v.Controls)),
	}
	for i, c := range v.Controls {
		ctl := &OptionControl{
			Position:     int32(c.Position),
			Name:         c.Name,
			Role:         Enum(c.Role),
			Values:       make([]*OptionValue, len(c.Values)),
			DefaultValue: optional(c.Default),
			Rendered:     c.Rendered,
		}
		for j, val := range c.Values {
			ctl.Values[j] = &OptionValue{Value: val.Value, Swatch: optional(val.Swatch)}
		}
		out.Controls[i] = ctl
	}
	return out
}

func FromMissing(missing []quickview.MissingOption) []*MissingOption {
	out := make([]*MissingOption, len(missing))
	for i, m := range missing {
		out[i] = &MissingOption{Position: int32(m.Position), Name: m.Name, Role: Enum(m.Role)}
	}
	return out
}

func FromRules(rules []quickview.BundleRule) []*BundleRule {
	out := make([]*BundleRule, len(rules))
	for i, r := range rules {
		qty := r.Quantity
		if qty <= 0 {
			qty = 1
		}
		out[i] = &BundleRule{Name: r.Name, Handle: r.Handle, Quantity: int32(qty)}
	}
	return out
}

func FromConfirm(res *quickview.ConfirmResult, redirect string) *AddToCartResult {
	out := &AddToCartResult{
		VariantID: res.Variant.ID,
		Bundles:   make([]*BundleLine, len(res.Bundles)),
		Complete:  res.Complete(),
		Redirect:  redirect,
	}
	for i, b := range res.Bundles {
		line := &BundleLine{
			Rule:      b.Rule,
			Handle:    b.Handle,
			Quantity:  int32(b.Quantity),
			VariantID: optional(b.VariantID),
			Added:     b.Added(),
		}
		if b.Err != nil {
			line.Error = optional(b.Err.Error())
		}
		out.Bundles[i] = line
	}
	return out
}
