package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom-video/media"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"trims whitespace", "fire, storm ", []string{"fire", "storm"}},
		{"single", "election", []string{"election"}},
		{"drops empty entries", "fire,,storm, ,", []string{"fire", "storm"}},
		{"empty string", "", nil},
		{"only whitespace", "   ", nil},
		{"only commas", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, media.ParseTags(tt.csv))
		})
	}
}
