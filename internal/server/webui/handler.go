// Package webui serves the browsable side of the daemon: it resolves
// request paths into the served root, streams files and renders
// directory index pages.
package webui

import (
	"net/http"
	"path/filepath"
	"strings"
	"webdisk/internal/server/webui/templates"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	root string
}

func NewHandler(rootDir string) (*Handler, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	return &Handler{root: strings.TrimSuffix(root, string(filepath.Separator))}, nil
}

// Root returns the absolute served root directory.
func (h *Handler) Root() string {
	return h.root
}

func (h *Handler) ServeHTTP(rsp http.ResponseWriter, req *http.Request) {
	// req.URL.Path is already decoded; hand the resolver the escaped
	// form so it decodes exactly once
	res := resolvePath(h.root, strings.TrimPrefix(req.URL.EscapedPath(), "/"))

	switch {
	case !res.Exists:
		rsp.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rsp.WriteHeader(http.StatusNotFound)
		_, _ = rsp.Write([]byte("404 Not Found"))
	case res.IsFile:
		http.ServeFile(rsp, req, res.Path)
	default:
		entries := listDirectory(res.Path, res.Path == h.root)

		rsp.Header().Set("Content-Type", "text/html; charset=utf-8")
		rsp.WriteHeader(http.StatusOK)
		if err := templates.WriteIndex(rsp, res.Rel, entries); err != nil {
			log.Warn().Err(err).Str("Path", req.URL.Path).Msg("Render index failed")
		}
	}
}
