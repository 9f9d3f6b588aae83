package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
	"webdisk/internal/server/config"

	"github.com/rs/zerolog/log"
)

// bindListeners brings up the socket set with dual-stack fallback:
//
//  1. Bind IPv4. On success, additionally bind IPv6 when configured; an
//     IPv6 failure is logged and the already-bound IPv4 listener keeps
//     serving alone.
//  2. When the IPv4 bind fails and IPv6 is configured, fall back to
//     IPv6-only; if that also fails the earlier IPv4 error surfaces.
//  3. Without IPv6 configured an IPv4 failure surfaces directly.
func bindListeners(c *config.Server) ([]net.Listener, error) {
	port := strconv.Itoa(int(c.Port))
	addrV4 := net.JoinHostPort(c.IPv4, port)
	addrV6 := net.JoinHostPort(c.IPv6, port)
	hasV6 := c.IPv6 != ""

	l4, errV4 := net.Listen("tcp4", addrV4)
	if errV4 == nil {
		log.Info().Str("Addr", addrV4).Msg("Listening on IPv4")
		listeners := []net.Listener{l4}

		if hasV6 {
			l6, errV6 := net.Listen("tcp6", addrV6)
			if errV6 != nil {
				log.Warn().Str("Addr", addrV6).Msg("IPv6 bind failed: " + FormatBindError(errV6))
			} else {
				log.Info().Str("Addr", addrV6).Msg("Listening on IPv6")
				listeners = append(listeners, l6)
			}
		}
		return listeners, nil
	}

	log.Warn().Str("Addr", addrV4).Msg("IPv4 bind failed: " + FormatBindError(errV4))
	if !hasV6 {
		return nil, errV4
	}

	l6, errV6 := net.Listen("tcp6", addrV6)
	if errV6 != nil {
		log.Warn().Str("Addr", addrV6).Msg("IPv6 bind failed: " + FormatBindError(errV6))
		return nil, errV4
	}
	log.Info().Str("Addr", addrV6).Msg("Listening on IPv6 only")
	return []net.Listener{l6}, nil
}

// FormatBindError turns a bind failure into an operator-facing message.
func FormatBindError(err error) string {
	switch {
	case errors.Is(err, syscall.EADDRNOTAVAIL):
		return "can not bind the given address, check that the IP address belongs to this host"
	case errors.Is(err, syscall.EADDRINUSE):
		return "address already in use"
	case errors.Is(err, syscall.EACCES):
		return "permission denied, ports below 1024 need elevated privileges"
	default:
		return fmt.Sprintf("startup failed: %v", err)
	}
}
