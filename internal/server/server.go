// Package server wires the request-handling gateway together: path
// resolution and index rendering for plain paths, the auth gate in front
// of the delegated WebDAV handler for /webdav paths, and the dual-stack
// listener bring-up.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
	"webdisk/internal/server/config"
	"webdisk/internal/server/webui"
	"webdisk/internal/util"
	"webdisk/version"

	"github.com/rs/zerolog/log"
)

const (
	idleTimeout       = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	httpServer http.Server
	errorChan  chan error

	webuiHandler *webui.Handler
	davGate      *authGate
}

func NewServer(c *config.Server) (s *Server, err error) {
	s = &Server{}

	s.webuiHandler, err = webui.NewHandler(c.RootDir)
	if err != nil {
		return nil, err
	}

	s.davGate = newAuthGate(c, newWebdavHandler(s.webuiHandler.Root()))
	return s, nil
}

// Root returns the absolute served root directory.
func (s *Server) Root() string {
	return s.webuiHandler.Root()
}

// Run binds the listener set per the dual-stack fallback ladder and
// serves until Shutdown or the first listener error.
func (s *Server) Run(c *config.Server) error {
	listeners, err := bindListeners(c)
	if err != nil {
		return err
	}

	s.httpServer = http.Server{
		Handler:           s,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.errorChan = make(chan error, len(listeners))
	for _, listener := range listeners {
		go func(l net.Listener) {
			s.errorChan <- s.httpServer.Serve(l)
		}(listener)
	}
	return <-s.errorChan
}

func (s *Server) Shutdown() {
	err := s.httpServer.Shutdown(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

func (s *Server) serveRecover(rsp *responseWriter, req *http.Request, err any) {
	// A dead connection is not worth a stack trace
	var brokenPipe bool
	if ne, ok := err.(*net.OpError); ok {
		var se *os.SyscallError
		if errors.As(ne, &se) {
			seStr := strings.ToLower(se.Error())
			if strings.Contains(seStr, "broken pipe") ||
				strings.Contains(seStr, "connection reset by peer") {
				brokenPipe = true
			}
		}
	}

	if brokenPipe {
		log.Warn().Str("From", req.RemoteAddr).Msg("Connection reset")
		return
	}

	log.Error().Str("From", req.RemoteAddr).Str("Err", fmt.Sprint(err)).Msg("Panic")

	if rsp.status == statusUnwrited {
		rsp.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) writeMethodNotAllow(rsp http.ResponseWriter, allow string) {
	rsp.Header().Set("Allow", allow)
	rsp.WriteHeader(http.StatusMethodNotAllowed)
}

func (s *Server) ServeHTTP(rsp_ http.ResponseWriter, req *http.Request) {
	rsp := newResponseWriter(rsp_)

	defer func() {
		if err := recover(); err != nil {
			s.serveRecover(rsp, req, err)
		} else {
			log.Info().Str("Path", req.RequestURI).Str("From", req.RemoteAddr).Int("Code", rsp.status).Msg(req.Method)
		}
	}()
	rsp.Header().Set("Server", "webdisk/"+version.Version)

	if !util.IsUrlValid(req.URL.Path) {
		rsp.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.URL.Path == WebdavPrefix || strings.HasPrefix(req.URL.Path, WebdavPrefix+"/") {
		s.davGate.ServeHTTP(rsp, req)
		return
	}

	if req.Method != "GET" && req.Method != "HEAD" {
		s.writeMethodNotAllow(rsp, "GET, HEAD")
		return
	}
	s.webuiHandler.ServeHTTP(rsp, req)
}
