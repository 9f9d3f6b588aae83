package supervisor

import (
	"errors"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrProcessNotFound classifies "the target process no longer exists",
// the one stop failure that still allows PID file cleanup.
var ErrProcessNotFound = errors.New("process not found")

// Handle is the capability the supervisor needs over a tracked process.
// It isolates platform signal mechanics behind one interface.
type Handle interface {
	Alive() (bool, error)
	// Terminate requests a graceful stop (SIGTERM or the platform
	// equivalent).
	Terminate() error
	// Kill stops the process forcefully.
	Kill() error
}

type processHandle struct {
	proc *process.Process
}

// OpenProcess attaches to a running process by pid. A pid that names no
// live process yields ErrProcessNotFound.
func OpenProcess(pid int32) (Handle, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProcessNotFound
		}
		return nil, err
	}
	return &processHandle{proc: proc}, nil
}

func (h *processHandle) Alive() (bool, error) {
	running, err := h.proc.IsRunning()
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return running, nil
}

func (h *processHandle) Terminate() error {
	if err := h.proc.Terminate(); err != nil {
		if isNotFound(err) {
			return ErrProcessNotFound
		}
		return err
	}
	return nil
}

func (h *processHandle) Kill() error {
	if err := h.proc.Kill(); err != nil {
		if isNotFound(err) {
			return ErrProcessNotFound
		}
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, process.ErrorProcessNotRunning) ||
		errors.Is(err, os.ErrProcessDone) ||
		errors.Is(err, syscall.ESRCH)
}
