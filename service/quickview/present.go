package quickview

import (
	"fmt"
	"regexp"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultExcerptLimit = 180

var markupTag = regexp.MustCompile(`<[^>]+>`)

// FormatPrice renders an amount in minor units for display, e.g.
// FormatPrice(1250, "EUR", "de-DE") gives "12,50 €".
func FormatPrice(minor int64, currencyCode, locale string) (string, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", fmt.Errorf("price currency %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("price locale %q: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	divisor := 1.0
	for i := 0; i < scale; i++ {
		divisor *= 10
	}
	p := message.NewPrinter(tag)
	amount := p.Sprint(number.Decimal(float64(minor)/divisor, number.Scale(scale)))
	return amount + " " + p.Sprint(currency.Symbol(unit)), nil
}

// Excerpt strips markup and keeps the first limit characters, followed by
// an ellipsis.
func Excerpt(markup string, limit int) string {
	if limit <= 0 {
		limit = DefaultExcerptLimit
	}
	runes := []rune(markupTag.ReplaceAllString(markup, ""))
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "…"
}

// ViewOptions controls presentation formatting.
type ViewOptions struct {
	Currency     string
	Locale       string
	ExcerptLimit int
}

// View is the render model of an open popup.
type View struct {
	Handle     string          `json:"handle"`
	Title      string          `json:"title"`
	PriceMinor int64           `json:"price_minor"`
	Price      string          `json:"price"`
	Excerpt    string          `json:"excerpt"`
	Image      string          `json:"image,omitempty"`
	Controls   []OptionControl `json:"controls"`
}

// BuildView formats a session's product for the presentation layer.
func BuildView(ss *Session, opts ViewOptions) (View, error) {
	p := ss.Product()
	price, err := FormatPrice(p.Price, opts.Currency, opts.Locale)
	if err != nil {
		return View{}, err
	}
	v := View{
		Handle:     p.Handle,
		Title:      p.Title,
		PriceMinor: p.Price,
		Price:      price,
		Excerpt:    Excerpt(p.Description, opts.ExcerptLimit),
		Controls:   ss.Controls(),
	}
	if len(p.Images) > 0 {
		v.Image = p.Images[0]
	}
	return v, nil
}
