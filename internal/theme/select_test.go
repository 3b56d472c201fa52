package theme

import (
	"errors"
	"testing"
)

func TestSelectDefaultFlagged(t *testing.T) {
	themes := []*Tokens{
		{Metadata: Metadata{ID: "horizon"}},
		{Metadata: Metadata{ID: "midnight", Default: true}},
	}
	selected, err := SelectDefault(themes)
	if err != nil {
		t.Fatalf("SelectDefault: %v", err)
	}
	if selected.Metadata.ID != "midnight" {
		t.Fatalf("expected midnight, got %q", selected.Metadata.ID)
	}
}

func TestSelectDefaultFallsBackToFirst(t *testing.T) {
	themes := []*Tokens{
		{Metadata: Metadata{ID: "horizon"}},
		{Metadata: Metadata{ID: "midnight"}},
	}
	selected, err := SelectDefault(themes)
	if err != nil {
		t.Fatalf("SelectDefault: %v", err)
	}
	if selected.Metadata.ID != "horizon" {
		t.Fatalf("expected first theme horizon, got %q", selected.Metadata.ID)
	}
}

func TestSelectDefaultEmpty(t *testing.T) {
	_, err := SelectDefault(nil)
	if !errors.Is(err, ErrNoThemes) {
		t.Fatalf("expected ErrNoThemes, got %v", err)
	}
}
