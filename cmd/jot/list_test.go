package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickFormat(t *testing.T) {
	tests := []struct {
		name   string
		json   bool
		yaml   bool
		expect outputFormat
	}{
		{"plain", false, false, formatPlain},
		{"json", true, false, formatJSON},
		{"yaml", false, true, formatYAML},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, pickFormat(tc.json, tc.yaml))
		})
	}
}
