package webui

import (
	"fmt"
	"path/filepath"
	"strings"
	"webdisk/internal/server/webui/templates"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count with 1024-based units. The byte case
// keeps the integer form, every larger unit gets exactly two decimals.
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// iconFor classifies a file name into one of the fixed icon categories
// by its lowercase extension. Directories and symlinks are handled by
// the caller and never reach this table.
func iconFor(name string) string {
	switch extension(name) {
	case "iso", "img", "esd", "wim", "vhd", "vmdk":
		return templates.IconDisc
	case "jpg", "jpeg", "png", "gif", "bmp", "webp", "svg":
		return templates.IconImage
	case "mp4", "mkv", "avi", "mov", "wmv", "flv", "webm":
		return templates.IconVideo
	case "mp3", "wav", "ogg", "m4a", "flac", "aac":
		return templates.IconAudio
	case "pdf":
		return templates.IconPdf
	case "doc", "docx":
		return templates.IconDoc
	case "xls", "xlsx":
		return templates.IconSheet
	case "ppt", "pptx":
		return templates.IconSlides
	case "txt", "md", "log":
		return templates.IconText
	case "zip", "rar", "7z", "tar", "gz", "bz2", "xz":
		return templates.IconArchive
	case "c", "cpp", "h", "hpp", "rs", "go", "py", "js", "html", "css", "java":
		return templates.IconCode
	case "exe", "msi", "bat", "sh", "cmd":
		return templates.IconExec
	case "json", "yaml", "yml", "toml", "ini", "conf":
		return templates.IconConfig
	case "ttf", "otf", "woff", "woff2":
		return templates.IconFont
	default:
		return templates.IconFile
	}
}

// previewable is the closed allow-list of media extensions the index
// page can preview inline.
func previewable(name string) bool {
	switch extension(name) {
	case "jpg", "jpeg", "png", "gif", "webp",
		"mp4", "webm",
		"mp3", "wav", "ogg":
		return true
	default:
		return false
	}
}
