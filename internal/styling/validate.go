package styling

import (
	"strings"

	"github.com/lumenlabs/lumen/internal/theme"
)

// Validate checks that every var() reference in the configuration resolves to
// a custom property the selected theme actually defines. A reference to a
// token the theme does not carry is a configuration error and must fail the
// build instead of reaching the styling layer as an undefined value.
func (c *Config) Validate(selected *theme.Tokens) error {
	defined := make(map[string]struct{})
	for _, prop := range properties(selected) {
		defined[prop.Name] = struct{}{}
	}

	for _, refs := range []map[string]string{
		c.Colors,
		c.Spacing,
		c.BorderRadius,
		c.BoxShadow,
		c.TransitionDuration,
		c.TransitionTimingFunction,
		c.FontFamily,
		c.FontSize,
		c.LineHeight,
	} {
		for _, key := range sortedKeys(refs) {
			name, ok := varTarget(refs[key])
			if !ok {
				continue
			}
			if _, ok := defined[name]; !ok {
				return &ReferenceError{Ref: refs[key]}
			}
		}
	}
	return nil
}

// varTarget extracts the custom property name from a var() reference.
func varTarget(ref string) (string, bool) {
	if !strings.HasPrefix(ref, "var(") || !strings.HasSuffix(ref, ")") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(ref, "var("), ")"), true
}
