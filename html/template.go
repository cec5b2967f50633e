package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"quickview.GO/html/parts"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded templates.
func NewTemplate() *Template {
	funcs := template.FuncMap{
		"criticalCSS": parts.GetCriticalCSS,
	}
	return &Template{
		Templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}
