package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentYAML = `profile:
  name: Ada Example
  title: Software Engineer
  tagline: I build small, fast things.
  bio: Engineer with a soft spot for build tooling.
  email: ada@example.com
  location: Berlin
projects:
  - name: tokensmith
    description: A design token compiler.
    repo: https://example.com/tokensmith
    tags: [go, css]
    year: 2025
experience:
  - company: Example Co
    role: Senior Engineer
    start: "2022"
    highlights:
      - Shipped the design system build pipeline.
social:
  - label: GitHub
    url: https://github.com/ada
`

func TestLoadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(contentYAML), 0644); err != nil {
		t.Fatalf("write content: %v", err)
	}

	content, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if content.Profile.Name != "Ada Example" {
		t.Fatalf("unexpected profile name: %q", content.Profile.Name)
	}
	if len(content.Projects) != 1 || content.Projects[0].Name != "tokensmith" {
		t.Fatalf("unexpected projects: %+v", content.Projects)
	}
}

func TestLoadContentMissingProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("projects: []\n"), 0644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	_, err := LoadContent(path)
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestRouteFor(t *testing.T) {
	route, ok := RouteFor("/projects")
	if !ok || route.Page != "projects" {
		t.Fatalf("unexpected route: %+v ok=%v", route, ok)
	}
	route, ok = RouteFor("projects/")
	if !ok || route.Page != "projects" {
		t.Fatalf("expected path cleaning to resolve, got %+v ok=%v", route, ok)
	}
	if _, ok := RouteFor("/missing"); ok {
		t.Fatal("expected unknown path to miss")
	}
}

func TestRouteOutputPath(t *testing.T) {
	home, _ := RouteFor("/")
	if home.OutputPath() != "index.html" {
		t.Fatalf("unexpected home output path: %q", home.OutputPath())
	}
	about, _ := RouteFor("/about")
	if about.OutputPath() != filepath.ToSlash(filepath.Join("about", "index.html")) {
		t.Fatalf("unexpected about output path: %q", about.OutputPath())
	}
}

func TestRenderPage(t *testing.T) {
	content := &Content{
		Profile: Profile{Name: "Ada Example", Tagline: "I build small, fast things."},
		Social:  []SocialLink{{Label: "GitHub", URL: "https://github.com/ada"}},
	}

	route, _ := RouteFor("/")
	html, err := RenderPage(route, PageData{
		Content: content,
		ThemeID: "midnight",
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(html, `data-theme="midnight"`) {
		t.Fatal("expected selected theme on the document root")
	}
	if !strings.Contains(html, "Ada Example") {
		t.Fatal("expected profile name in rendered page")
	}
	if !strings.Contains(html, "/assets/theme.css") {
		t.Fatal("expected generated stylesheet link")
	}
}

func TestRenderAllRoutes(t *testing.T) {
	content := &Content{Profile: Profile{Name: "Ada Example"}}
	for _, route := range Routes() {
		if _, err := RenderPage(route, PageData{Content: content}); err != nil {
			t.Fatalf("render %s: %v", route.Path, err)
		}
	}
}
