package router

import (
	"fmt"
	"strings"
)

// SelectionMode controls which route wins when several templates match
// the same request path.
type SelectionMode string

const (
	// SelectLast keeps evaluating every route and lets the last matching
	// route in registration order win. This is the default.
	SelectLast SelectionMode = "last"
	// SelectFirst stops at the first matching route in registration order.
	SelectFirst SelectionMode = "first"
	// SelectSpecific picks the most specific matching route: segments are
	// compared left to right with literal segments outranking segments
	// that mix text, raw fragments and variables, which outrank pure
	// variable segments. Then more segments win. Remaining ties go to the
	// later route.
	SelectSpecific SelectionMode = "specific"
)

// ParseSelectionMode converts a configuration value into a SelectionMode.
// The empty string yields SelectLast.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch m := SelectionMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SelectLast, nil
	case SelectLast, SelectFirst, SelectSpecific:
		return m, nil
	default:
		return "", fmt.Errorf("router: unknown selection mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SelectionMode) UnmarshalText(text []byte) error {
	mode, err := ParseSelectionMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m SelectionMode) String() string {
	if m == "" {
		return string(SelectLast)
	}
	return string(m)
}

// Segment scores used by SelectSpecific.
const (
	segmentVar = iota + 1
	segmentMixed
	segmentLiteral
)

// segmentSpecificity scores every non-empty path segment of a template.
func segmentSpecificity(toks []token) []int {
	var scores []int
	var hasVar, hasText, hasRaw bool

	closeSegment := func() {
		switch {
		case !hasVar && !hasText && !hasRaw:
		case !hasText && !hasRaw:
			scores = append(scores, segmentVar)
		case !hasVar && !hasRaw:
			scores = append(scores, segmentLiteral)
		default:
			scores = append(scores, segmentMixed)
		}
		hasVar, hasText, hasRaw = false, false, false
	}

	for _, tok := range toks {
		if tok.kind == tokenVar {
			hasVar = true
			continue
		}

		for i, part := range strings.Split(tok.text, "/") {
			if i > 0 {
				closeSegment()
			}
			if part == "" {
				continue
			}
			if _, ok := literalText(part); ok {
				hasText = true
			} else {
				hasRaw = true
			}
		}
	}

	closeSegment()

	return scores
}

// compareSpecificity returns a positive number when a is more specific
// than b, a negative number when it is less specific and zero on a tie.
func compareSpecificity(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}
