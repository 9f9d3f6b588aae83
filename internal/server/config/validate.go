package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the whole config. Struct tags cover the simple rules,
// the address and path formats need custom checks.
func Validate(c *Server) error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if !IsValidIPv4(c.IPv4) && !IsValidDomain(c.IPv4) {
		return fmt.Errorf("ip: %q is not a valid IPv4 address (like 127.0.0.1) or domain (like example.com)", c.IPv4)
	}
	if c.IPv6 != "" && !IsValidIPv6(c.IPv6) {
		return fmt.Errorf("ipv6: %q is not a valid IPv6 address (like ::1 or 2001:db8::1)", c.IPv6)
	}
	if !IsValidRootPath(c.RootDir) {
		return fmt.Errorf("cwd: %q must be an absolute path or start with ./ or ../", c.RootDir)
	}

	for _, name := range c.Webdav.Users.Names() {
		if name == "" {
			return fmt.Errorf("webdav: username can not be empty")
		}
	}

	return nil
}

func formatValidationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		e := verrs[0]
		switch e.StructNamespace() {
		case "Server.Port":
			return fmt.Errorf("port: must be a number between 1 and 65535")
		case "Server.IPv4":
			return fmt.Errorf("ip: must not be empty")
		case "Server.RootDir":
			return fmt.Errorf("cwd: must not be empty")
		}
		return fmt.Errorf("%s: validation failed on '%s' tag", e.StructNamespace(), e.Tag())
	}
	return err
}

func IsValidIPv4(value string) bool {
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil && strings.Count(value, ".") == 3
}

// IsValidDomain applies the usual hostname rules: dot-separated labels
// of at most 63 characters, alphanumeric plus hyphen, no label starting
// or ending with a hyphen, at least two labels.
func IsValidDomain(value string) bool {
	if value == "" || len(value) > 253 {
		return false
	}
	for _, c := range value {
		if !isAlnum(c) && c != '.' && c != '-' {
			return false
		}
	}
	if strings.HasPrefix(value, ".") || strings.HasPrefix(value, "-") ||
		strings.HasSuffix(value, ".") || strings.HasSuffix(value, "-") {
		return false
	}

	parts := strings.Split(value, ".")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 63 ||
			strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func IsValidIPv6(value string) bool {
	ip := net.ParseIP(value)
	return ip != nil && strings.Contains(value, ":")
}

// IsValidRootPath accepts absolute paths and relative paths explicitly
// anchored with ./ or ../, rejecting bare names so a typo does not
// silently serve an unexpected directory.
func IsValidRootPath(value string) bool {
	if value == "" {
		return false
	}
	return strings.HasPrefix(value, "/") ||
		strings.HasPrefix(value, "./") ||
		strings.HasPrefix(value, "../") ||
		isWindowsAbs(value)
}

func isWindowsAbs(value string) bool {
	return len(value) > 2 && isAlnum(rune(value[0])) && value[1] == ':' &&
		(value[2] == '\\' || value[2] == '/')
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
