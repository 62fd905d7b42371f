package router

import "strings"

// patternMacros maps macro names to their sub-patterns.
// Used in route variable definitions: {name:macro}.
var patternMacros = map[string]string{
	"uuid":     `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`,
	"int":      `[0-9]+`,
	"float":    `[0-9]*\.?[0-9]+`,
	"slug":     `[a-z0-9]+(?:-[a-z0-9]+)*`,
	"alpha":    `[a-z]+`,
	"alphanum": `[a-z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-f]+`,
}

// expandMacro returns the sub-pattern registered for a macro name.
// Macro names are case-insensitive. Matching is case-insensitive as a
// whole, so the lower-case character classes above also accept upper case.
func expandMacro(name string) (string, bool) {
	p, ok := patternMacros[strings.ToLower(name)]
	return p, ok
}
