// Package supervisor makes the daemon operable as a background service:
// it tracks the running process through a PID file and implements start
// (detached respawn), stop (graceful then forced) and liveness query.
package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	PIDFileName = "webdisk.pid"
	LogFileName = "webdisk.log"

	// stop polls at pollInterval up to gracePeriod before escalating
	// to a forced kill.
	pollInterval = 100 * time.Millisecond
	gracePeriod  = 3 * time.Second
)

var (
	ErrAlreadyRunning = errors.New("service already running")
	ErrNotRunning     = errors.New("service not running")
)

// Supervisor manages the daemon process recorded in <dataDir>/webdisk.pid.
// The PID file's existence is the source of truth for "running".
type Supervisor struct {
	dataDir string
}

func New(dataDir string) *Supervisor {
	return &Supervisor{dataDir: dataDir}
}

func (s *Supervisor) PIDPath() string {
	return filepath.Join(s.dataDir, PIDFileName)
}

func (s *Supervisor) LogPath() string {
	return filepath.Join(s.dataDir, LogFileName)
}

// ReadPID returns the recorded pid, or an error wrapping os.ErrNotExist
// when no PID file is present.
func (s *Supervisor) ReadPID() (int32, error) {
	raw, err := os.ReadFile(s.PIDPath())
	if err != nil {
		return 0, err
	}
	pid, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pid file: %w", err)
	}
	return int32(pid), nil
}

// WritePID records the calling process. Invoked by the internal run
// entry point before foreground startup.
func (s *Supervisor) WritePID() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.PIDPath(), []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func (s *Supervisor) RemovePID() error {
	return os.Remove(s.PIDPath())
}

// Start launches a detached copy of the current executable with the
// internal run subcommand, stdout and stderr appended to the log file.
// An existing readable PID file means already running; no liveness probe
// happens here, a stale file after a crash has to be removed by stop.
func (s *Supervisor) Start() error {
	if _, err := s.ReadPID(); err == nil {
		return ErrAlreadyRunning
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(s.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cmd := exec.Command(exe, "run")
	cmd.Stdin = nil
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Start(); err != nil {
		return err
	}
	// the child runs on its own, the parent must not wait
	return cmd.Process.Release()
}

// Stop terminates the recorded process: graceful signal, bounded poll
// for death, then a forced kill. The PID file is removed once the
// process is confirmed gone, including the case where it had already
// exited; any other failure leaves the file in place and surfaces.
func (s *Supervisor) Stop() error {
	pid, err := s.ReadPID()
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotRunning
		}
		return err
	}

	if err := s.stopProcess(pid); err != nil {
		if errors.Is(err, ErrProcessNotFound) {
			if rmErr := s.RemovePID(); rmErr != nil {
				return rmErr
			}
			return ErrProcessNotFound
		}
		return err
	}

	return s.RemovePID()
}

func (s *Supervisor) stopProcess(pid int32) error {
	handle, err := OpenProcess(pid)
	if err != nil {
		return err
	}

	if err := handle.Terminate(); err != nil {
		return err
	}

	deadline := time.Now().Add(gracePeriod)
	for time.Now().Before(deadline) {
		alive, err := handle.Alive()
		if err != nil {
			return err
		}
		if !alive {
			return nil
		}
		time.Sleep(pollInterval)
	}

	if err := handle.Kill(); err != nil && !errors.Is(err, ErrProcessNotFound) {
		return err
	}
	return nil
}
