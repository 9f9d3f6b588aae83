package templates

// Entry is one row of a rendered directory index. It is built fresh from
// live filesystem metadata for every request and discarded afterwards.
type Entry struct {
	// Name is the raw entry name used for link targets.
	Name string
	// DisplayName is what the page shows; symbolic links carry a marker
	// here that Name does not.
	DisplayName string
	// SizeLabel is a human-readable size for files, a fixed placeholder
	// for directories, empty for the synthetic parent entry.
	SizeLabel     string
	ModifiedLabel string
	// ModifiedAgo is a relative age ("3 days ago") shown as a tooltip.
	ModifiedAgo string
	IsDir       bool
	Icon        string
	// PreviewURL is non-empty only for previewable media files.
	PreviewURL string
}

// Icon category tags. The template maps each tag to a glyph; the
// indexer only ever assigns these values.
const (
	IconDir     = "dir"
	IconSymlink = "symlink"
	IconDisc    = "disc"
	IconArchive = "archive"
	IconImage   = "image"
	IconVideo   = "video"
	IconAudio   = "audio"
	IconPdf     = "pdf"
	IconDoc     = "doc"
	IconSheet   = "sheet"
	IconSlides  = "slides"
	IconText    = "text"
	IconCode    = "code"
	IconExec    = "exec"
	IconConfig  = "config"
	IconFont    = "font"
	IconFile    = "file"
)
