// Package theme loads design token documents and resolves them into CSS
// custom property references for the styling layer.
package theme

import (
	"errors"
	"fmt"
)

// Theme loading and selection errors.
var (
	// ErrNoThemes is returned when selection runs against an empty theme list.
	ErrNoThemes = errors.New("no themes loaded")
	// ErrManifestEmpty is returned when a manifest lists no themes.
	ErrManifestEmpty = errors.New("manifest lists no themes")
	// ErrDuplicateThemeID is returned when two manifest entries share an ID.
	ErrDuplicateThemeID = errors.New("duplicate theme id in manifest")
)

// ParseError reports a manifest or token document that could not be read
// or decoded. Path names the offending file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Manifest indexes the available themes and identifies the default.
type Manifest struct {
	Themes []ManifestEntry `json:"themes"`
}

// ManifestEntry describes one theme listed in the manifest.
type ManifestEntry struct {
	ID      string `json:"id"`
	File    string `json:"file"`
	Default bool   `json:"default,omitempty"`
}

// Validate checks the manifest shape before any theme file is touched.
func (m *Manifest) Validate() error {
	if len(m.Themes) == 0 {
		return ErrManifestEmpty
	}
	seen := make(map[string]struct{}, len(m.Themes))
	for i, entry := range m.Themes {
		if entry.ID == "" {
			return fmt.Errorf("theme entry %d: id is required", i)
		}
		if entry.File == "" {
			return fmt.Errorf("theme %q: file is required", entry.ID)
		}
		if _, ok := seen[entry.ID]; ok {
			return fmt.Errorf("theme %q: %w", entry.ID, ErrDuplicateThemeID)
		}
		seen[entry.ID] = struct{}{}
	}
	return nil
}

// Tokens is a single theme's token document.
type Tokens struct {
	Metadata   Metadata   `json:"metadata"`
	Primitives Primitives `json:"primitives"`
	Semantic   Semantic   `json:"semantic"`
}

// Metadata identifies a theme within its token document.
type Metadata struct {
	ID      string `json:"id"`
	Default bool   `json:"default,omitempty"`
}

// Primitives holds the raw design scales a theme is built from.
type Primitives struct {
	Spacing    map[string]string `json:"spacing"`
	Motion     Motion            `json:"motion"`
	Radius     map[string]string `json:"radius"`
	Shadow     map[string]string `json:"shadow"`
	Typography Typography        `json:"typography"`
}

// Motion groups duration and easing scales.
type Motion struct {
	Duration map[string]string `json:"duration"`
	Easing   map[string]string `json:"easing"`
}

// Typography groups the font scales.
type Typography struct {
	FontFamily map[string]string `json:"fontFamily"`
	FontSize   map[string]string `json:"fontSize"`
	LineHeight map[string]string `json:"lineHeight"`
}

// Semantic holds role-named tokens. Colors are nested category -> token -> raw value,
// e.g. Semantic.Color["background"]["default"] = "#0a0a0f".
type Semantic struct {
	Color map[string]map[string]string `json:"color"`
}

// Validate checks a token document for the fields the pipeline depends on.
func (t *Tokens) Validate() error {
	if t.Metadata.ID == "" {
		return errors.New("metadata.id is required")
	}
	for category, tokens := range t.Semantic.Color {
		if category == "" {
			return errors.New("semantic.color contains an empty category name")
		}
		for name, value := range tokens {
			if name == "" {
				return fmt.Errorf("semantic.color.%s contains an empty token name", category)
			}
			if value == "" {
				return fmt.Errorf("semantic.color.%s.%s has an empty value", category, name)
			}
		}
	}
	return nil
}
