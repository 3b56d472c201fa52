package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// LoadManifest reads and validates the theme manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ParseError{Path: path, Err: os.ErrInvalid}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := manifest.Validate(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &manifest, nil
}

// LoadTokens reads and validates a single theme token document.
func LoadTokens(path string) (*Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var tokens Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := tokens.Validate(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &tokens, nil
}

// LoadThemes loads every theme listed in the manifest, in manifest order.
// Theme files are resolved relative to dir. Any unreadable or malformed
// file fails the whole load; the build never proceeds with partial data.
func LoadThemes(dir string, manifest *Manifest) ([]*Tokens, error) {
	themes := make([]*Tokens, 0, len(manifest.Themes))
	for _, entry := range manifest.Themes {
		path := filepath.Join(dir, entry.File)
		tokens, err := LoadTokens(path)
		if err != nil {
			return nil, err
		}
		// The manifest entry wins over the document for identity and
		// default flagging, so a stale metadata block cannot desync the set.
		tokens.Metadata.ID = entry.ID
		tokens.Metadata.Default = entry.Default
		themes = append(themes, tokens)
	}
	return themes, nil
}

// Load is the full loader entry point: manifest plus every theme it lists.
func Load(dir, manifestName string) (*Manifest, []*Tokens, error) {
	manifest, err := LoadManifest(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, nil, err
	}
	themes, err := LoadThemes(dir, manifest)
	if err != nil {
		return nil, nil, err
	}
	return manifest, themes, nil
}
