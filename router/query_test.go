package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{name: "empty", raw: "", expected: map[string]string{}},
		{name: "leading question mark", raw: "?a=1&b=two+words", expected: map[string]string{"a": "1", "b": "two words"}},
		{name: "percent-decoding", raw: "q=caf%C3%A9&k%20ey=v", expected: map[string]string{"q": "café", "k ey": "v"}},
		{name: "key without value", raw: "flag&x=", expected: map[string]string{"flag": "", "x": ""}},
		{name: "value keeps equals signs", raw: "expr=a=b", expected: map[string]string{"expr": "a=b"}},
		{name: "last value wins", raw: "a=1&a=2", expected: map[string]string{"a": "2"}},
		{name: "empty pieces are skipped", raw: "&&a=1&=x", expected: map[string]string{"a": "1"}},
		{name: "undecodable kept as written", raw: "a=%zz+b", expected: map[string]string{"a": "%zz b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuery(tt.raw))
		})
	}
}
