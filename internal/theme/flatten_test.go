package theme

import (
	"regexp"
	"testing"
)

func TestFlattenColors(t *testing.T) {
	colors := map[string]map[string]string{
		"background": {"default": "#0a0a0f", "raised": "#14141c"},
		"text":       {"primary": "#f4f4f5", "muted": "#8b8b99", "inverse": "#0a0a0f"},
		"accent":     {"default": "#7c6df2"},
	}

	flat := FlattenColors(colors)

	want := 0
	for _, tokens := range colors {
		want += len(tokens)
	}
	if len(flat) != want {
		t.Fatalf("expected %d flattened entries, got %d", want, len(flat))
	}

	keyPattern := regexp.MustCompile(`^[a-z]+-[a-z]+$`)
	for key := range flat {
		if !keyPattern.MatchString(key) {
			t.Fatalf("key %q does not match category-token shape", key)
		}
	}

	if got := flat["background-default"]; got != "var(--lm-color-background-default)" {
		t.Fatalf("unexpected reference for background-default: %q", got)
	}
}

func TestFlattenRoundTripsGenerator(t *testing.T) {
	colors := map[string]map[string]string{
		"surface": {"overlay": "rgba(0,0,0,0.5)"},
	}
	flat := FlattenColors(colors)

	if flat["surface-overlay"] != VarRef("color", "surface", "overlay") {
		t.Fatalf("flattened reference %q disagrees with generator %q",
			flat["surface-overlay"], VarRef("color", "surface", "overlay"))
	}
}

func TestFlattenEmpty(t *testing.T) {
	if flat := FlattenColors(nil); len(flat) != 0 {
		t.Fatalf("expected empty map, got %v", flat)
	}
}
