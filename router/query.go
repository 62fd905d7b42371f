package router

import (
	"net/url"
	"strings"
)

// ParseQuery parses "key=value&key2=value2" pairs. A leading '?' is
// ignored, '+' decodes to a space and keys and values are percent-decoded.
// The last value of a repeated key wins. Pieces that fail to decode are
// kept as written.
func ParseQuery(raw string) map[string]string {
	raw = strings.TrimPrefix(raw, "?")
	params := make(map[string]string)

	for _, pair := range strings.Split(raw, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		params[decodeQueryComponent(key)] = decodeQueryComponent(value)
	}

	return params
}

func decodeQueryComponent(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return strings.ReplaceAll(s, "+", " ")
}
