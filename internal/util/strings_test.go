package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "nil slice returns default", items: nil, want: "N/A"},
		{name: "only empty items returns default", items: []string{"", ""}, want: "N/A"},
		{name: "single item", items: []string{"linux"}, want: "linux"},
		{name: "skips empty items", items: []string{"ubuntu", "", "22.04"}, want: "ubuntu 22.04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinOrDefault(tt.items, " ", "N/A"))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "container", Pluralize(1, "container", "containers"))
	assert.Equal(t, "containers", Pluralize(0, "container", "containers"))
	assert.Equal(t, "containers", Pluralize(3, "container", "containers"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max", in: "bash", max: 20, want: "bash"},
		{name: "exactly max", in: "abcde", max: 5, want: "abcde"},
		{name: "cut to max", in: "chromium-browser-helper", max: 20, want: "chromium-browser-hel"},
		{name: "multi-byte runes", in: "процесс-сервер", max: 7, want: "процесс"},
		{name: "zero max", in: "x", max: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
