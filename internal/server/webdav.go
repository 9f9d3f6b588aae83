package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/webdav"
)

// WebdavPrefix is the URL subtree gated by HTTP Basic auth and handed to
// the delegated protocol handler.
const WebdavPrefix = "/webdav"

// newWebdavHandler builds the delegated WebDAV protocol handler over the
// served root. All protocol semantics (PROPFIND, locking, collection
// creation) live in the delegate; this process only fronts it with the
// auth gate.
func newWebdavHandler(root string) http.Handler {
	return &webdav.Handler{
		Prefix:     WebdavPrefix,
		FileSystem: webdav.Dir(root),
		LockSystem: webdav.NewMemLS(),
		Logger: func(req *http.Request, err error) {
			if err != nil {
				log.Warn().Err(err).Str("Path", req.URL.Path).Msg(req.Method)
			}
		},
	}
}
