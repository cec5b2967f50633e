package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"

	catalogEntity "quickview.GO/model/entity/catalog"
	"quickview.GO/service/quickview"
)

// storefrontProduct is the product document served at
// /products/<handle>.js. Option positions in the document are ignored; an
// option's position is its index.
type storefrontProduct struct {
	Handle      string              `mapstructure:"handle"`
	Title       string              `mapstructure:"title"`
	Price       int64               `mapstructure:"price"`
	Description string              `mapstructure:"description"`
	Images      []string            `mapstructure:"images"`
	Options     []storefrontOption  `mapstructure:"options"`
	Variants    []storefrontVariant `mapstructure:"variants"`
}

type storefrontOption struct {
	Name   string   `mapstructure:"name"`
	Values []string `mapstructure:"values"`
}

type storefrontVariant struct {
	ID      string   `mapstructure:"id"`
	Title   string   `mapstructure:"title"`
	Options []string `mapstructure:"options"`
}

// readDocument decodes one JSON value keeping numbers as json.Number, so
// large numeric variant ids survive as exact strings.
func readDocument(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeStorefront(doc interface{}) (storefrontProduct, error) {
	var sp storefrontProduct
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &sp,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return sp, err
	}
	if err := dec.Decode(doc); err != nil {
		return sp, fmt.Errorf("%w: %v", quickview.ErrInvalidProduct, err)
	}
	return sp, nil
}

// DecodeProduct converts a storefront product document into a Product.
func DecodeProduct(doc interface{}) (quickview.Product, error) {
	sp, err := decodeStorefront(doc)
	if err != nil {
		return quickview.Product{}, err
	}
	p := quickview.Product{
		Handle:      sp.Handle,
		Title:       sp.Title,
		Price:       sp.Price,
		Description: sp.Description,
		Images:      sp.Images,
	}
	for i, o := range sp.Options {
		p.Options = append(p.Options, quickview.ProductOption{Position: i, Name: o.Name, Values: o.Values})
	}
	for _, v := range sp.Variants {
		p.Variants = append(p.Variants, quickview.Variant{ID: v.ID, Options: v.Options})
	}
	return p, nil
}

// EncodeProduct renders p as a storefront product document.
func EncodeProduct(p quickview.Product) map[string]interface{} {
	options := make([]map[string]interface{}, len(p.Options))
	for i, o := range p.Options {
		options[i] = map[string]interface{}{"name": o.Name, "position": i + 1, "values": o.Values}
	}
	variants := make([]map[string]interface{}, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = map[string]interface{}{"id": v.ID, "options": v.Options}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return map[string]interface{}{
		"handle":      p.Handle,
		"title":       p.Title,
		"price":       p.Price,
		"description": p.Description,
		"images":      images,
		"options":     options,
		"variants":    variants,
	}
}

// FromEntity converts a stored product.
func FromEntity(e *catalogEntity.Product) quickview.Product {
	p := quickview.Product{
		Handle:      e.Handle,
		Title:       e.Title,
		Price:       e.Price,
		Description: e.Description,
		Images:      []string(e.Images),
	}
	for i, o := range e.Options {
		p.Options = append(p.Options, quickview.ProductOption{Position: i, Name: o.Name, Values: o.Values})
	}
	for _, v := range e.Variants {
		p.Variants = append(p.Variants, quickview.Variant{ID: v.ID, Options: v.Options})
	}
	return p
}

// ToEntity converts p for storage.
func ToEntity(p quickview.Product) *catalogEntity.Product {
	e := &catalogEntity.Product{
		Handle:      p.Handle,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
	}
	for _, o := range p.Options {
		e.Options = append(e.Options, catalogEntity.ProductOption{Name: o.Name, Values: o.Values})
	}
	for _, v := range p.Variants {
		e.Variants = append(e.Variants, catalogEntity.ProductVariant{ID: v.ID, Options: v.Options})
	}
	return e
}
