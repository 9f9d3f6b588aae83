package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUrlValid(t *testing.T) {
	assert.True(t, IsUrlValid("/"))
	assert.True(t, IsUrlValid("/a/b.txt"))
	assert.True(t, IsUrlValid("/%2e%2e/x")) // encoded forms pass, the resolver contains them

	assert.False(t, IsUrlValid(""))
	assert.False(t, IsUrlValid("a/b"))
	assert.False(t, IsUrlValid("/a/../b"))
	assert.False(t, IsUrlValid("/a/.."))
	assert.False(t, IsUrlValid("/a\x00b"))
}

func TestRandomString(t *testing.T) {
	s := RandomString(16, DefaultRandomStringRunes)
	assert.Len(t, s, 16)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(string(DefaultRandomStringRunes), c))
	}

	// vanishing collision odds at this length
	assert.NotEqual(t, s, RandomString(16, DefaultRandomStringRunes))
}

func TestTablePrint(t *testing.T) {
	table := NewTable("Name", "Permissions").WithLeftPadding(2)
	table.AddRow("bob", "rw")
	table.AddRow("a-longer-name", "r")

	var sb strings.Builder
	table.Print(&sb)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Permissions")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "), "left padding applied")
	}
	// columns align on the widest cell
	assert.Equal(t, strings.LastIndex(lines[1], "rw"), strings.LastIndex(lines[2], "r"))
}
