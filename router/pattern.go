package router

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// defaultVarPattern matches one or more characters excluding the path
// separator.
const defaultVarPattern = "[^/]+"

// tokenKind distinguishes template text from variable placeholders.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenVar
)

// token is one piece of a scanned route template.
type token struct {
	kind tokenKind
	// text holds raw template text for tokenText. It is passed to the
	// regexp compiler unchanged, so it may carry matching fragments.
	text string
	// name is the variable name for tokenVar.
	name string
	// sub is the parenthesized custom sub-pattern of {name(sub)}, verbatim.
	sub string
	// macro is the macro name of {name:macro}.
	macro string
}

// expr returns the regexp fragment a variable captures with.
func (t token) expr() string {
	switch {
	case t.sub != "":
		return t.sub
	case t.macro != "":
		p, _ := expandMacro(t.macro)
		return p
	default:
		return defaultVarPattern
	}
}

// source renders the token back into template syntax.
func (t token) source() string {
	switch {
	case t.kind == tokenText:
		return t.text
	case t.sub != "":
		return "{" + t.name + t.sub + "}"
	case t.macro != "":
		return "{" + t.name + ":" + t.macro + "}"
	default:
		return "{" + t.name + "}"
	}
}

// routePattern stores a compiled template and metadata about it.
type routePattern struct {
	// template is the normalized template string.
	template string
	// tokens are the scanned pieces of the template.
	tokens []token
	// regexp is the anchored, case-insensitive matcher.
	regexp *regexp.Regexp
	// varsN are the variable names in declaration order.
	varsN []string
	// varsI are the submatch indexes of varsN in regexp.
	varsI []int
	// varsR validate single variable values for Build.
	varsR []*regexp.Regexp
	// specificity scores each path segment, see compareSpecificity.
	specificity []int
}

// patternOptions holds options for template compilation.
type patternOptions struct {
	strictSlash bool
}

// parsePattern scans and normalizes a raw template. The root template "/"
// is normalized to "". Template text and variable names are lower-cased;
// escaped characters and the bodies of custom sub-patterns are kept as
// written so escapes such as \D keep their meaning.
func parsePattern(tpl string) ([]token, string, error) {
	if tpl == "/" {
		return nil, "", nil
	}

	toks, err := scanPattern(tpl)
	if err != nil {
		return nil, "", err
	}

	var b strings.Builder
	for i := range toks {
		switch toks[i].kind {
		case tokenText:
			toks[i].text = lowerUnescaped(toks[i].text)
		case tokenVar:
			toks[i].name = strings.ToLower(toks[i].name)
			toks[i].macro = strings.ToLower(toks[i].macro)
		}
		b.WriteString(toks[i].source())
	}

	return toks, b.String(), nil
}

// newRoutePattern compiles scanned tokens into a routePattern.
func newRoutePattern(template string, toks []token, options patternOptions) (*routePattern, error) {
	var (
		pattern strings.Builder
		varsN   []string
		varsR   []*regexp.Regexp
	)

	// Strip a trailing slash so it can be replaced with an optional [/]?
	// group when strict slash is enabled.
	trailingSlash := false
	if options.strictSlash && len(toks) > 0 {
		last := &toks[len(toks)-1]
		if last.kind == tokenText && strings.HasSuffix(last.text, "/") && !strings.HasSuffix(last.text, `\/`) {
			trailingSlash = true
		}
	}

	pattern.WriteString("(?i)^(?:")

	for i, tok := range toks {
		if tok.kind == tokenText {
			text := tok.text
			if trailingSlash && i == len(toks)-1 {
				text = strings.TrimSuffix(text, "/")
			}
			pattern.WriteString(text)
			continue
		}

		fmt.Fprintf(&pattern, "(?P<%s>%s)", tok.name, tok.expr())

		varR, err := compileRegexp(fmt.Sprintf("(?i)^(?:%s)$", tok.expr()))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sub-pattern %q in variable %q: %v", ErrInvalidPattern, tok.expr(), tok.name, err)
		}

		varsN = append(varsN, tok.name)
		varsR = append(varsR, varR)
	}

	if trailingSlash {
		pattern.WriteString("[/]?")
	}

	pattern.WriteString(")$")

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	reg, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, template, err)
	}

	varsI := make([]int, len(varsN))
	for i, name := range varsN {
		varsI[i] = reg.SubexpIndex(name)
	}

	return &routePattern{
		template:    template,
		tokens:      toks,
		regexp:      reg,
		varsN:       varsN,
		varsI:       varsI,
		varsR:       varsR,
		specificity: segmentSpecificity(toks),
	}, nil
}

// match reports whether path matches the template and extracts the
// variables. Unnamed groups from raw fragments are not collected.
func (p *routePattern) match(path string) (Vars, bool) {
	matches := p.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}

	vars := make(Vars, len(p.varsN))
	for i, name := range p.varsN {
		if idx := p.varsI[i]; idx > 0 && idx < len(matches) {
			vars[name] = matches[idx]
		}
	}

	return vars, true
}

// build renders the template with the given variable values.
func (p *routePattern) build(values map[string]string) (string, error) {
	var (
		b   strings.Builder
		pos int
	)

	for _, tok := range p.tokens {
		if tok.kind == tokenText {
			lit, ok := literalText(tok.text)
			if !ok {
				return "", fmt.Errorf("%w: %q contains a raw matching fragment", ErrNotBuildable, p.template)
			}
			b.WriteString(lit)
			continue
		}

		v, ok := values[tok.name]
		if !ok {
			return "", fmt.Errorf("router: missing route variable %q", tok.name)
		}
		if !p.varsR[pos].MatchString(v) {
			return "", fmt.Errorf("router: variable %q doesn't match, expected %q", tok.name, tok.expr())
		}
		b.WriteString(v)
		pos++
	}

	if b.Len() == 0 {
		return "/", nil
	}

	return b.String(), nil
}

// scanPattern splits a template into text and variable tokens.
// Backslash escapes in text are kept together with the escaped character
// so an escaped brace never opens a variable.
func scanPattern(tpl string) ([]token, error) {
	var (
		toks []token
		text strings.Builder
	)

	flush := func() {
		if text.Len() > 0 {
			toks = append(toks, token{kind: tokenText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(tpl); {
		c := tpl[i]

		if c == '\\' && i+1 < len(tpl) {
			text.WriteString(tpl[i : i+2])
			i += 2
			continue
		}

		if c == '{' {
			tok, n, ok, err := scanVariable(tpl[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, tpl, err)
			}
			if ok {
				flush()
				toks = append(toks, tok)
				i += n
				continue
			}
		}

		text.WriteByte(c)
		i++
	}

	flush()

	return toks, nil
}

// scanVariable parses a variable placeholder at the start of s, which
// begins with '{'. It returns ok=false when s does not start a
// placeholder, for example a regexp repetition such as {2,4}, in which
// case the brace is kept as template text.
func scanVariable(s string) (token, int, bool, error) {
	j := 1
	for j < len(s) && isNameByte(s[j]) {
		j++
	}

	name := s[1:j]
	if !validVarName(name) || j >= len(s) {
		return token{}, 0, false, nil
	}

	switch s[j] {
	case '}':
		return token{kind: tokenVar, name: name}, j + 1, true, nil

	case '(':
		end, err := matchParen(s, j)
		if err != nil {
			return token{}, 0, false, fmt.Errorf("variable %q: %w", name, err)
		}
		if end+1 >= len(s) || s[end+1] != '}' {
			return token{}, 0, false, fmt.Errorf("variable %q: expected '}' after sub-pattern", name)
		}
		return token{kind: tokenVar, name: name, sub: s[j : end+1]}, end + 2, true, nil

	case ':':
		k := strings.IndexByte(s[j:], '}')
		if k < 0 {
			return token{}, 0, false, fmt.Errorf("variable %q: missing '}' after macro", name)
		}
		macro := s[j+1 : j+k]
		if _, ok := expandMacro(macro); !ok {
			return token{}, 0, false, fmt.Errorf("variable %q: unknown macro %q", name, macro)
		}
		return token{kind: tokenVar, name: name, macro: macro}, j + k + 1, true, nil
	}

	return token{}, 0, false, nil
}

// matchParen returns the index of the ')' closing the '(' at s[open].
// Escapes and bracket expressions are skipped.
func matchParen(s string, open int) (int, error) {
	var (
		depth   int
		inClass bool
	)

	for i := open; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// A ']' right after '[' or '[^' is a literal member.
			if i+1 < len(s) && s[i+1] == '^' {
				i++
			}
			if i+1 < len(s) && s[i+1] == ']' {
				i++
			}
		case c == '(':
			depth++
		case c == ')':
			if depth--; depth == 0 {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("unbalanced parentheses in %q", s)
}

// checkDuplicateVars returns an error if any variable name is repeated.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("%w: duplicated route variable %q", ErrInvalidPattern, v)
		}
		seen[v] = true
	}
	return nil
}

func isNameByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// validVarName requires a leading letter or underscore and at least one
// letter or digit. A leading digit is rejected so repetition counts like
// {3} stay regexp syntax.
func validVarName(name string) bool {
	if name == "" || ('0' <= name[0] && name[0] <= '9') {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool { return r != '_' }) >= 0
}

// lowerUnescaped lower-cases s except for characters following a
// backslash.
func lowerUnescaped(s string) string {
	var (
		b       strings.Builder
		escaped bool
	)
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

// regexpMeta lists characters that make template text a matching fragment
// rather than a literal.
const regexpMeta = `.+*?()|[]{}^$`

// literalText returns the literal string s describes, resolving escapes of
// punctuation. It returns false when s holds an unescaped metacharacter or
// a class escape such as \d.
func literalText(s string) (string, bool) {
	var (
		b       strings.Builder
		escaped bool
	)

	for _, r := range s {
		switch {
		case escaped:
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return "", false
			}
			escaped = false
		case r == '\\':
			escaped = true
			continue
		case strings.ContainsRune(regexpMeta, r):
			return "", false
		}
		b.WriteRune(r)
	}

	return b.String(), !escaped
}
