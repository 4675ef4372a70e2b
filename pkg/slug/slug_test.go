// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestFrom covers the normalization pipeline: accents, punctuation, casing,
and hyphen collapsing.
*/
func TestFrom(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"Café com Pão", "cafe-com-pao"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"C'est l'été!", "c-est-l-ete"},
		{"UPPER-case", "upper-case"},
		{"100% Go", "100-go"},
		{"", ""},
		{"---", ""},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, From(testCase.input), "input: %q", testCase.input)
	}
}
