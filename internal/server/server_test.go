package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, webdavEnabled bool) *Server {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.txt"), []byte("content"), 0o644))

	c := gateConfig(webdavEnabled)
	c.RootDir = root

	s, err := NewServer(c)
	require.NoError(t, err)
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServerSetsServerHeader(t *testing.T) {
	s := newTestServer(t, false)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Server"), "webdisk/"))
}

func TestServerServesFilesAndIndexes(t *testing.T) {
	s := newTestServer(t, false)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/index.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "content", rec.Body.String())

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "index.txt")
}

func TestServerRejectsNonReadMethodsOutsideWebdav(t *testing.T) {
	s := newTestServer(t, true)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, "PROPFIND"} {
		rec := serve(s, httptest.NewRequest(method, "/index.txt", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method %s", method)
		assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"), "method %s", method)
	}

	rec := serve(s, httptest.NewRequest(http.MethodHead, "/index.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServerRoutesWebdavPrefix(t *testing.T) {
	s := newTestServer(t, false)

	// disabled feature answers 404 from the gate, not the file tree
	for _, target := range []string{"/webdav", "/webdav/", "/webdav/deep/path"} {
		rec := serve(s, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "target %s", target)
		assert.Equal(t, "WebDAV service is disabled", rec.Body.String(), "target %s", target)
	}

	// a sibling path that merely shares the prefix is not WebDAV
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/webdavish", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404 Not Found", rec.Body.String())
}

func TestServerEnabledWebdavChallenges(t *testing.T) {
	s := newTestServer(t, true)

	rec := serve(s, httptest.NewRequest("PROPFIND", "/webdav/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestServerRejectsNulInPath(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/bad\x00path"
	rec := serve(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
