package site

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageData is the data every page template renders with.
type PageData struct {
	Route   Route
	Routes  []Route
	Content *Content
	ThemeID string
	Themes  []string
}

// RenderPage renders one route's page to HTML.
func RenderPage(route Route, data PageData) (string, error) {
	tmpl, err := template.New("layout.html.tmpl").ParseFS(
		templateFS,
		"templates/layout.html.tmpl",
		"templates/"+route.Page+".html.tmpl",
	)
	if err != nil {
		return "", fmt.Errorf("parse page %q: %w", route.Page, err)
	}

	data.Route = route
	if data.Routes == nil {
		data.Routes = Routes()
	}

	var out strings.Builder
	if err := tmpl.ExecuteTemplate(&out, "layout", data); err != nil {
		return "", fmt.Errorf("render page %q: %w", route.Page, err)
	}
	return out.String(), nil
}
