package site

import _ "embed"

// Base stylesheet shared by every page. Semantic classes resolve through the
// generated theme variables, so switching data-theme restyles the whole site.
//
//go:embed assets/site.css
var baseCSS []byte

// BaseCSS returns the static stylesheet written next to the generated theme CSS.
func BaseCSS() []byte {
	out := make([]byte, len(baseCSS))
	copy(out, baseCSS)
	return out
}
