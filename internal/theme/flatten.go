package theme

// FlattenColors converts the nested semantic color groupings into a flat map
// of "<category>-<token>" composite keys to variable references. Keys are
// unique by construction: the category/token nesting cannot produce the same
// pair twice, so no dedup pass is needed.
func FlattenColors(colors map[string]map[string]string) map[string]string {
	flat := make(map[string]string)
	for category, tokens := range colors {
		for name := range tokens {
			flat[category+"-"+name] = VarRef("color", category, name)
		}
	}
	return flat
}
