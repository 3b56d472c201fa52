package styling

import (
	"errors"
	"testing"

	"github.com/lumenlabs/lumen/internal/theme"
)

func testTokens() *theme.Tokens {
	return &theme.Tokens{
		Metadata: theme.Metadata{ID: "midnight", Default: true},
		Primitives: theme.Primitives{
			Spacing: map[string]string{"sm": "0.5rem", "md": "1rem"},
			Motion: theme.Motion{
				Duration: map[string]string{"standard": "200ms", "slow": "400ms"},
				Easing:   map[string]string{"standard": "ease-out"},
			},
			Radius: map[string]string{"md": "0.375rem"},
			Shadow: map[string]string{"card": "0 1px 3px rgba(0,0,0,0.4)"},
			Typography: theme.Typography{
				FontFamily: map[string]string{"sans": "Inter, sans-serif"},
				FontSize:   map[string]string{"base": "1rem"},
				LineHeight: map[string]string{"normal": "1.5"},
			},
		},
		Semantic: theme.Semantic{
			Color: map[string]map[string]string{
				"background": {"default": "#0a0a0f"},
				"text":       {"primary": "#f4f4f5"},
			},
		},
	}
}

func TestEmit(t *testing.T) {
	cfg, err := Emit(testTokens())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if got := cfg.Colors["background-default"]; got != "var(--lm-color-background-default)" {
		t.Fatalf("unexpected color reference: %q", got)
	}
	if got := cfg.Spacing["sm"]; got != "var(--lm-spacing-sm)" {
		t.Fatalf("unexpected spacing reference: %q", got)
	}
	if got := cfg.FontFamily["sans"]; got != "var(--lm-font-family-sans)" {
		t.Fatalf("unexpected font family reference: %q", got)
	}
	if len(cfg.Screens) == 0 {
		t.Fatal("expected responsive screens to be populated")
	}
}

func TestEmitSynthesizesDefaultFromStandard(t *testing.T) {
	cfg, err := Emit(testTokens())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if got := cfg.TransitionDuration["DEFAULT"]; got != "var(--lm-motion-duration-standard)" {
		t.Fatalf("expected DEFAULT synthesized from standard, got %q", got)
	}
	if got := cfg.TransitionTimingFunction["DEFAULT"]; got != "var(--lm-motion-easing-standard)" {
		t.Fatalf("expected DEFAULT easing synthesized from standard, got %q", got)
	}
}

func TestEmitKeepsExplicitDefault(t *testing.T) {
	tokens := testTokens()
	tokens.Primitives.Motion.Duration["DEFAULT"] = "250ms"

	cfg, err := Emit(tokens)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if got := cfg.TransitionDuration["DEFAULT"]; got != "var(--lm-motion-duration-DEFAULT)" {
		t.Fatalf("explicit DEFAULT should not be overwritten, got %q", got)
	}
}

func TestEmitMissingStandardFails(t *testing.T) {
	tokens := testTokens()
	tokens.Primitives.Motion.Duration = map[string]string{"slow": "400ms"}

	_, err := Emit(tokens)
	if err == nil {
		t.Fatal("expected error when standard duration token is missing")
	}
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %T", err)
	}
	if refErr.Ref != "--lm-motion-duration-standard" {
		t.Fatalf("unexpected missing reference: %q", refErr.Ref)
	}
}

func TestValidate(t *testing.T) {
	tokens := testTokens()
	cfg, err := Emit(tokens)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := cfg.Validate(tokens); err != nil {
		t.Fatalf("expected emitted config to validate against its own theme: %v", err)
	}
}

func TestValidateCatchesDanglingReference(t *testing.T) {
	tokens := testTokens()
	cfg, err := Emit(tokens)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	cfg.Colors["accent-default"] = theme.VarRef("color", "accent", "default")

	err = cfg.Validate(tokens)
	if err == nil {
		t.Fatal("expected dangling reference to fail validation")
	}
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected *ReferenceError, got %T", err)
	}
}
