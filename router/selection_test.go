package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectionMode(t *testing.T) {
	tests := []struct {
		input     string
		expected  SelectionMode
		expectErr bool
	}{
		{input: "", expected: SelectLast},
		{input: "last", expected: SelectLast},
		{input: "First", expected: SelectFirst},
		{input: " specific ", expected: SelectSpecific},
		{input: "random", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseSelectionMode(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestSegmentSpecificity(t *testing.T) {
	tests := []struct {
		tpl      string
		expected []int
	}{
		{tpl: "/users/new", expected: []int{segmentLiteral, segmentLiteral}},
		{tpl: "/users/{id}", expected: []int{segmentLiteral, segmentVar}},
		{tpl: "/{a}/{b}", expected: []int{segmentVar, segmentVar}},
		{tpl: "/files/{name}.json", expected: []int{segmentLiteral, segmentMixed}},
		{tpl: "/(en|de)/home", expected: []int{segmentMixed, segmentLiteral}},
		{tpl: "/users/", expected: []int{segmentLiteral}},
	}

	for _, tt := range tests {
		t.Run(tt.tpl, func(t *testing.T) {
			toks, _, err := parsePattern(tt.tpl)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, segmentSpecificity(toks))
		})
	}

	t.Run("root", func(t *testing.T) {
		assert.Empty(t, segmentSpecificity(nil))
	})
}

func TestCompareSpecificity(t *testing.T) {
	literal := []int{segmentLiteral, segmentLiteral}
	variable := []int{segmentLiteral, segmentVar}
	longer := []int{segmentLiteral, segmentVar, segmentLiteral}

	assert.Positive(t, compareSpecificity(literal, variable))
	assert.Negative(t, compareSpecificity(variable, literal))
	assert.Positive(t, compareSpecificity(longer, variable))
	assert.Zero(t, compareSpecificity(variable, variable))
	assert.Equal(t, "last", SelectionMode("").String())
}
