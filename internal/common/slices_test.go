package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	got, ok := Remove([]string{"W1", "W2", "W1"}, "W1")
	assert.True(t, ok)
	assert.Equal(t, []string{"W2"}, got)

	in := []string{"W1"}
	got, ok = Remove(in, "W9")
	assert.False(t, ok)
	assert.Equal(t, in, got)
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"replaces", []string{"W1", "W2", "W3"}, []string{"W1", "W9", "W3"}},
		{"survivor already present", []string{"W9", "W2", "W3"}, []string{"W9", "W3"}},
		{"repeated", []string{"W2", "W2"}, []string{"W9"}},
		{"absent", []string{"W1"}, []string{"W1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replace(tt.in, "W2", "W9"))
		})
	}
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 12))
	assert.True(t, IsInRange(1, 12, 12))
	assert.False(t, IsInRange(1, 13, 12))
	assert.False(t, IsInRange(0.0, -0.5, 1.0))
}
