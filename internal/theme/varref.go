package theme

import "strings"

// varPrefix marks every custom property emitted by the pipeline so generated
// variables cannot collide with hand-written ones.
const varPrefix = "--lm"

// VarName builds the custom property name for a token path,
// e.g. VarName("color", "background", "default") -> "--lm-color-background-default".
func VarName(segments ...string) string {
	return varPrefix + "-" + strings.Join(segments, "-")
}

// VarRef builds the var() reference for a token path. Pure and deterministic;
// consuming styles resolve the actual value at render time.
func VarRef(segments ...string) string {
	return "var(" + VarName(segments...) + ")"
}
