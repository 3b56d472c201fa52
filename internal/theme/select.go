package theme

// SelectDefault returns the theme flagged as default. When no theme carries
// the flag the first loaded theme wins; manifest order is preserved by the
// loader, so "first" means first in the manifest.
func SelectDefault(themes []*Tokens) (*Tokens, error) {
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}
	for _, t := range themes {
		if t.Metadata.Default {
			return t, nil
		}
	}
	return themes[0], nil
}
