// Package styling assembles the configuration consumed by the build's
// styling layer from a theme's design tokens.
package styling

import (
	"fmt"

	"github.com/lumenlabs/lumen/internal/theme"
)

const (
	// defaultKey is the variant utilities resolve when no token is named.
	defaultKey = "DEFAULT"
	// standardToken is the canonical motion token defaultKey is synthesized from.
	standardToken = "standard"
)

// ReferenceError reports an emitted reference that does not resolve to a
// custom property defined by the selected theme.
type ReferenceError struct {
	Ref string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("styling reference %s does not resolve to a defined token", e.Ref)
}

// Config is the extend surface handed to the styling layer. Every value is a
// var() reference; raw token values only ever appear in the generated CSS.
type Config struct {
	Colors                   map[string]string `json:"colors"`
	Spacing                  map[string]string `json:"spacing"`
	BorderRadius             map[string]string `json:"borderRadius"`
	BoxShadow                map[string]string `json:"boxShadow"`
	TransitionDuration       map[string]string `json:"transitionDuration"`
	TransitionTimingFunction map[string]string `json:"transitionTimingFunction"`
	FontFamily               map[string]string `json:"fontFamily"`
	FontSize                 map[string]string `json:"fontSize"`
	LineHeight               map[string]string `json:"lineHeight"`
	Screens                  map[string]string `json:"screens"`
}

// defaultScreens are the responsive variant breakpoints the site's pages use.
var defaultScreens = map[string]string{
	"sm": "640px",
	"md": "768px",
	"lg": "1024px",
	"xl": "1280px",
}

// Emit assembles the styling configuration for the selected theme. The only
// conditional step in the pipeline lives here: when a motion scale lacks a
// DEFAULT entry, one is synthesized from the "standard" token. A theme that
// omits "standard" in that case is a configuration error, caught here rather
// than surfacing downstream as a dangling var().
func Emit(t *theme.Tokens) (*Config, error) {
	duration, err := withDefault(t.Primitives.Motion.Duration, "motion", "duration")
	if err != nil {
		return nil, err
	}
	easing, err := withDefault(t.Primitives.Motion.Easing, "motion", "easing")
	if err != nil {
		return nil, err
	}

	screens := make(map[string]string, len(defaultScreens))
	for name, width := range defaultScreens {
		screens[name] = width
	}

	return &Config{
		Colors:                   theme.FlattenColors(t.Semantic.Color),
		Spacing:                  refMap(t.Primitives.Spacing, "spacing"),
		BorderRadius:             refMap(t.Primitives.Radius, "radius"),
		BoxShadow:                refMap(t.Primitives.Shadow, "shadow"),
		TransitionDuration:       duration,
		TransitionTimingFunction: easing,
		FontFamily:               refMap(t.Primitives.Typography.FontFamily, "font", "family"),
		FontSize:                 refMap(t.Primitives.Typography.FontSize, "font", "size"),
		LineHeight:               refMap(t.Primitives.Typography.LineHeight, "font", "leading"),
		Screens:                  screens,
	}, nil
}

// refMap maps every token in a scale to its variable reference.
func refMap(tokens map[string]string, segments ...string) map[string]string {
	out := make(map[string]string, len(tokens))
	for name := range tokens {
		out[name] = theme.VarRef(append(segments, name)...)
	}
	return out
}

// withDefault builds a reference map and guarantees a DEFAULT entry.
func withDefault(tokens map[string]string, segments ...string) (map[string]string, error) {
	out := refMap(tokens, segments...)
	if _, ok := out[defaultKey]; ok {
		return out, nil
	}
	if _, ok := tokens[standardToken]; !ok {
		return nil, &ReferenceError{Ref: theme.VarName(append(segments, standardToken)...)}
	}
	out[defaultKey] = theme.VarRef(append(segments, standardToken)...)
	return out, nil
}
