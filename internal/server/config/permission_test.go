package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission(t *testing.T) {
	tests := []struct {
		input string
		want  Permission
	}{
		{"", 0},
		{"r", PermRead},
		{"w", PermWrite},
		{"x", PermExecute},
		{"rw", PermRead | PermWrite},
		{"rwx", PermRead | PermWrite | PermExecute},
		{"xwr", PermRead | PermWrite | PermExecute}, // order free
		{"rrr", PermRead},                           // duplicates tolerated
	}
	for _, tt := range tests {
		got, err := ParsePermission(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParsePermissionRejectsUnknownCharacters(t *testing.T) {
	for _, input := range []string{"a", "rwa", "R", "r w", "rw7"} {
		_, err := ParsePermission(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestPermissionString(t *testing.T) {
	// String always renders the canonical r-w-x order.
	assert.Equal(t, "", Permission(0).String())
	assert.Equal(t, "r", PermRead.String())
	assert.Equal(t, "rw", (PermWrite | PermRead).String())
	assert.Equal(t, "rwx", (PermExecute | PermWrite | PermRead).String())
	assert.Equal(t, "rx", (PermExecute | PermRead).String())
}

func TestPermissionHas(t *testing.T) {
	p := PermRead | PermExecute
	assert.True(t, p.Has(PermRead))
	assert.True(t, p.Has(PermExecute))
	assert.False(t, p.Has(PermWrite))
	assert.False(t, p.Has(PermRead|PermWrite))
	assert.True(t, p.Has(PermRead|PermExecute))
}
