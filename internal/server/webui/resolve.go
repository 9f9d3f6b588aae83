package webui

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolution is the outcome of mapping a request path onto the root
// subtree. Path is only meaningful when Exists is true.
type Resolution struct {
	Exists bool
	IsFile bool
	Path   string
	// Rel is the canonical slash-form path relative to the root, ""
	// for the root itself. Set even when the path does not exist.
	Rel string
}

// resolvePath maps the still-escaped URL path component onto a
// filesystem path that is guaranteed to stay under root. Taking the
// escaped form keeps the decode here the one and only decode, so names
// with a literal '%' resolve correctly. A decode failure degrades to
// the root directory instead of failing the request. Parent segments
// are canonicalized away before joining, and the result is verified to
// remain a descendant of root.
func resolvePath(root, raw string) Resolution {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = ""
	}

	rel := strings.TrimPrefix(path.Clean("/"+decoded), "/")
	full := filepath.Join(root, filepath.FromSlash(rel))

	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return Resolution{Rel: rel}
	}

	fi, err := os.Stat(full)
	if err != nil {
		return Resolution{Rel: rel}
	}

	return Resolution{
		Exists: true,
		IsFile: !fi.IsDir(),
		Path:   full,
		Rel:    rel,
	}
}
