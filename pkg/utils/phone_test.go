package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		input    string
		expected string
	}{
		{name: "local number", prefix: "+33", input: "612345678", expected: "+33 612345678"},
		{name: "trunk zero dropped", prefix: "+33", input: "06 12 34 56 78", expected: "+33 612345678"},
		{name: "prefix without plus", prefix: "33", input: "06-12-34-56-78", expected: "+33 612345678"},
		{name: "own code matching prefix", prefix: "+33", input: "+33 6 12 34 56 78", expected: "+33 612345678"},
		{name: "own code without space", prefix: "+33", input: "+33612345678", expected: "+33 612345678"},
		{name: "double zero matching prefix", prefix: "+33", input: "0033 (0)6 12 34 56 78", expected: "+33 612345678"},
		{name: "foreign code", prefix: "+33", input: "+44 7700 900123", expected: "+447700900123"},
		{name: "foreign double zero code", prefix: "+33", input: "0044 7700 900123", expected: "+447700900123"},
		{name: "no prefix", prefix: "", input: "(06) 12 34 56 78", expected: "0612345678"},
		{name: "empty", prefix: "+33", input: "  ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhoneNumber(tt.prefix, tt.input))
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"+33 612345678", true},
		{"0612345678", true},
		{"+33 ", false},
		{"12345", false},
		{"+1234567890123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePhoneNumber(tt.input))
		})
	}
}
