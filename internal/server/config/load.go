package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DataDir holds the config file, PID file and background log,
	// relative to the daemon's working directory.
	DataDir  = "data"
	FileName = "config.yaml"

	// EnvConfigPath selects an alternate config file for the server
	// process when set.
	EnvConfigPath = "WEBDISK_CONFIG"
)

func DefaultPath() string {
	return filepath.Join(DataDir, FileName)
}

// Load reads the config from the default location, creating the data
// directory and a default config file on first run. The configured root
// directory exists on disk when Load returns without error.
func Load() (*Server, error) {
	if err := os.MkdirAll(DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDefault(); err != nil {
			return nil, err
		}
	}

	return LoadFrom(path)
}

// LoadFrom reads and validates the config at path. Unlike Load it does
// not create a missing file.
func LoadFrom(path string) (*Server, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := &Server{}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}

	c.filePath, err = filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LoadActive picks the config the server should run with: the file named
// by the WEBDISK_CONFIG environment variable when set, the default
// location otherwise.
func LoadActive() (*Server, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFrom(path)
	}
	return Load()
}

// Save validates and writes the config back to the file it was loaded
// from. Validation failing leaves the on-disk file untouched.
func (c *Server) Save() error {
	if err := Validate(c); err != nil {
		return err
	}

	path := c.filePath
	if path == "" {
		path = DefaultPath()
	}

	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

// WriteDefault (re)creates the default config file.
func WriteDefault() error {
	if err := os.MkdirAll(DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	c := Default()
	raw, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(DefaultPath(), raw, 0o644)
}
