package fs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSerializer_Parse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty file", "", nil},
		{"single line", "line1\n", []string{"line1"}},
		{"no final newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"unicode", "héllo wörld\n", []string{"héllo wörld"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LineSerializer{}.Parse(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineSerializer_Serialize(t *testing.T) {
	data, err := LineSerializer{}.Serialize([]string{"a", "", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(data))

	data, err = LineSerializer{}.Serialize(nil)
	require.NoError(t, err)
	assert.Empty(t, data)
}
