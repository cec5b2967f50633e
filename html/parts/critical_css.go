package parts

import (
	"html/template"

	_ "embed"
)

//go:embed quickview.css
var popupCSS string

// GetCriticalCSS returns the popup stylesheet inlined into the fragment.
func GetCriticalCSS() template.CSS {
	return template.CSS(popupCSS)
}
