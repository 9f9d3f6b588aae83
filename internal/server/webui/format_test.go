package webui

import (
	"testing"
	"webdisk/internal/server/webui/templates"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{10, "10 B"},
		{1023, "1023 B"}, // bytes never get decimals
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5*1024*1024*1024 + 512*1024*1024, "5.50 GB"},
		{1024 * 1024 * 1024 * 1024, "1.00 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.00 PB"},
		// beyond the last unit the value keeps growing in PB
		{2048 * 1024 * 1024 * 1024 * 1024, "2048.00 PB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.size), "size %d", tt.size)
	}
}

func TestIconForIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, templates.IconImage, iconFor("photo.JPG"))
	assert.Equal(t, templates.IconImage, iconFor("photo.jpg"))
	assert.Equal(t, templates.IconArchive, iconFor("backup.TAR"))
}

func TestIconForCategories(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"movie.mp4", templates.IconVideo},
		{"song.flac", templates.IconAudio},
		{"paper.pdf", templates.IconPdf},
		{"notes.md", templates.IconText},
		{"main.go", templates.IconCode},
		{"setup.exe", templates.IconExec},
		{"app.yaml", templates.IconConfig},
		{"font.woff2", templates.IconFont},
		{"disk.iso", templates.IconDisc},
		{"noext", templates.IconFile},
		{"weird.xyz", templates.IconFile},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, iconFor(tt.name), "name %s", tt.name)
	}
}

func TestPreviewableAllowList(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.PNG", "c.webm", "d.mp3", "e.ogg"} {
		assert.True(t, previewable(name), "name %s", name)
	}
	// svg renders as an image icon but is not previewable, same for mkv
	for _, name := range []string{"a.svg", "b.mkv", "c.pdf", "d.txt", "e"} {
		assert.False(t, previewable(name), "name %s", name)
	}
}
