package styling

import (
	"fmt"
	"io"
	"sort"

	"github.com/lumenlabs/lumen/internal/theme"
)

// property is one custom property definition within a theme scope.
type property struct {
	Name  string
	Value string
}

// properties enumerates every custom property a theme defines, in a fixed
// group order with sorted names inside each group. Sorting keeps repeated
// builds byte-identical.
func properties(t *theme.Tokens) []property {
	var props []property

	for _, category := range sortedKeys(t.Semantic.Color) {
		tokens := t.Semantic.Color[category]
		for _, name := range sortedKeys(tokens) {
			props = append(props, property{
				Name:  theme.VarName("color", category, name),
				Value: tokens[name],
			})
		}
	}

	groups := []struct {
		segments []string
		tokens   map[string]string
	}{
		{[]string{"spacing"}, t.Primitives.Spacing},
		{[]string{"radius"}, t.Primitives.Radius},
		{[]string{"shadow"}, t.Primitives.Shadow},
		{[]string{"motion", "duration"}, t.Primitives.Motion.Duration},
		{[]string{"motion", "easing"}, t.Primitives.Motion.Easing},
		{[]string{"font", "family"}, t.Primitives.Typography.FontFamily},
		{[]string{"font", "size"}, t.Primitives.Typography.FontSize},
		{[]string{"font", "leading"}, t.Primitives.Typography.LineHeight},
	}
	for _, group := range groups {
		for _, name := range sortedKeys(group.tokens) {
			props = append(props, property{
				Name:  theme.VarName(append(group.segments, name)...),
				Value: group.tokens[name],
			})
		}
	}

	return props
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// WriteCSS renders the generated stylesheet: the selected theme's properties
// on :root, plus a [data-theme] scope per loaded theme so the site can switch
// themes at render time without a rebuild.
func WriteCSS(w io.Writer, themes []*theme.Tokens, selected *theme.Tokens) error {
	if _, err := fmt.Fprintln(w, "/* Generated theme variables. Do not edit. */"); err != nil {
		return err
	}

	if err := writeScope(w, ":root", selected); err != nil {
		return err
	}
	for _, t := range themes {
		scope := fmt.Sprintf("[data-theme=%q]", t.Metadata.ID)
		if err := writeScope(w, scope, t); err != nil {
			return err
		}
	}
	return nil
}

func writeScope(w io.Writer, scope string, t *theme.Tokens) error {
	if _, err := fmt.Fprintf(w, "\n%s {\n", scope); err != nil {
		return err
	}
	for _, prop := range properties(t) {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", prop.Name, prop.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
