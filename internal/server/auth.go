package server

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"
	"webdisk/internal/server/config"

	"github.com/rs/zerolog/log"
)

var (
	ErrAuthHeaderNotExists = errors.New("http auth header not exists")
	ErrBadAuthHeader       = errors.New("bad http auth header")
	ErrUserNotExists       = errors.New("user not exists")
	ErrPasswordMismatch    = errors.New("password mismatch")
)

const authRealm = `Basic realm="WebDAV Server"`

// writeVerbs are the WebDAV methods that require the write capability.
var writeVerbs = map[string]bool{
	"PUT":    true,
	"DELETE": true,
	"MKCOL":  true,
	"COPY":   true,
	"MOVE":   true,
}

// authGate stands in front of the delegated WebDAV handler. It never
// touches the filesystem itself: feature check, credential check and
// permission check all run on in-memory config, only the delegate does
// I/O.
type authGate struct {
	enabled bool
	users   config.UserMap
	next    http.Handler
}

func newAuthGate(c *config.Server, next http.Handler) *authGate {
	return &authGate{
		enabled: c.Webdav.Enabled,
		users:   c.Webdav.Users,
		next:    next,
	}
}

func (g *authGate) ServeHTTP(rsp http.ResponseWriter, req *http.Request) {
	if !g.enabled {
		rsp.WriteHeader(http.StatusNotFound)
		_, _ = rsp.Write([]byte("WebDAV service is disabled"))
		return
	}

	user, err := g.authenticate(req)
	switch {
	case err == nil:
		// fall through to the permission check
	case errors.Is(err, ErrBadAuthHeader):
		// Malformed scheme, base64 or encoding: no challenge, no
		// detail leaked.
		rsp.WriteHeader(http.StatusUnauthorized)
		_, _ = rsp.Write([]byte("unauthorized"))
		return
	default:
		g.writeChallenge(rsp)
		return
	}

	if writeVerbs[req.Method] && !user.Permissions.Has(config.PermWrite) {
		rsp.WriteHeader(http.StatusForbidden)
		_, _ = rsp.Write([]byte("Write permission required"))
		return
	}
	if !user.Permissions.Has(config.PermRead) {
		rsp.WriteHeader(http.StatusForbidden)
		_, _ = rsp.Write([]byte("Read permission required"))
		return
	}

	g.next.ServeHTTP(rsp, req)
}

func (g *authGate) writeChallenge(rsp http.ResponseWriter) {
	rsp.Header().Set("WWW-Authenticate", authRealm)
	rsp.WriteHeader(http.StatusUnauthorized)
}

// authenticate extracts and verifies HTTP Basic credentials. The payload
// splits on the first colon, so a colon can never appear in a username
// while passwords may contain them.
func (g *authGate) authenticate(req *http.Request) (config.User, error) {
	header := req.Header.Get("Authorization")
	if header == "" {
		return config.User{}, ErrAuthHeaderNotExists
	}

	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return config.User{}, ErrBadAuthHeader
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil || !utf8.Valid(raw) {
		return config.User{}, ErrBadAuthHeader
	}

	payload := string(raw)
	i := strings.IndexByte(payload, ':')
	if i < 0 {
		return config.User{}, ErrBadAuthHeader
	}
	username, password := payload[:i], payload[i+1:]

	user, ok := g.users.Get(username)
	if !ok {
		log.Info().Str("Name", username).Msg("User not exists")
		return config.User{}, ErrUserNotExists
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		log.Info().Str("Name", username).Msg("Password mismatch")
		return config.User{}, ErrPasswordMismatch
	}

	return user, nil
}
