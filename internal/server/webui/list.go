package webui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"webdisk/internal/server/webui/templates"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

const (
	dirSizeLabel   = "directory"
	parentName     = ".."
	parentLabel    = "go up"
	symlinkMarker  = " →" // arrow appended to display names of symlinks
	modifiedLayout = "2006-01-02 15:04:05"
)

// listDirectory enumerates the immediate children of dir: directories
// first, then files, both case-insensitively sorted by display name with
// enumeration order breaking ties. A synthetic parent entry leads the
// listing unless dir is the served root. Unreadable or vanished
// directories degrade to the synthetic entries alone so the caller can
// still render a page.
func listDirectory(dir string, atRoot bool) []templates.Entry {
	var dirs, files []templates.Entry

	f, err := os.Open(dir)
	if err != nil {
		log.Warn().Err(err).Str("Path", dir).Msg("Open dir failed")
	} else {
		infos, err := f.Readdir(-1)
		f.Close()
		if err != nil {
			log.Warn().Err(err).Str("Path", dir).Msg("Read dir failed")
		}

		for _, fi := range infos {
			entry := buildEntry(dir, fi)
			if entry.IsDir {
				dirs = append(dirs, entry)
			} else {
				files = append(files, entry)
			}
		}
	}

	byName := func(entries []templates.Entry) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(entries[i].DisplayName) < strings.ToLower(entries[j].DisplayName)
		}
	}
	sort.SliceStable(dirs, byName(dirs))
	sort.SliceStable(files, byName(files))

	entries := make([]templates.Entry, 0, len(dirs)+len(files)+1)
	if !atRoot {
		entries = append(entries, templates.Entry{
			Name:        parentName,
			DisplayName: parentLabel,
			IsDir:       true,
			Icon:        templates.IconDir,
		})
	}
	entries = append(entries, dirs...)
	entries = append(entries, files...)
	return entries
}

func buildEntry(dir string, fi os.FileInfo) templates.Entry {
	name := fi.Name()
	isSymlink := fi.Mode().Type() == os.ModeSymlink

	// Classification follows the symlink target. An unreachable target
	// keeps the link's own metadata and counts as a regular file (the
	// link mode itself never reports a directory).
	real := fi
	if isSymlink {
		target, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("Path", filepath.Join(dir, name)).Msg("Stat symlink target failed")
		} else {
			real = target
		}
	}
	isDir := real.IsDir()

	displayName := name
	if isSymlink {
		displayName += symlinkMarker
	}

	sizeLabel := dirSizeLabel
	if !isDir {
		sizeLabel = FormatSize(real.Size())
	}

	icon := iconFor(name)
	if isDir {
		icon = templates.IconDir
	} else if isSymlink {
		icon = templates.IconSymlink
	}

	previewURL := ""
	if !isDir && previewable(name) {
		previewURL = "./" + name
	}

	modified := real.ModTime()
	if modified.IsZero() {
		modified = time.Now()
	}

	return templates.Entry{
		Name:          name,
		DisplayName:   displayName,
		SizeLabel:     sizeLabel,
		ModifiedLabel: modified.Format(modifiedLayout),
		ModifiedAgo:   humanize.Time(modified),
		IsDir:         isDir,
		Icon:          icon,
		PreviewURL:    previewURL,
	}
}
