package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		str    string
		maxLen int
		want   string
	}{
		{"empty", "", 10, ""},
		{"short", "prompt", 100, "prompt"},
		{"long", "a very long rewritten prompt that keeps going", 20, "a very long rewri..."},
		{"multibyte", "«» padded «» prompt «»", 10, "«» padd..."},
		{"tiny_max", "abcdef", 2, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, previewString(tt.str, tt.maxLen))
		})
	}
}
