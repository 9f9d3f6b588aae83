package supervisor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalePID is far beyond any real pid space.
const stalePID = int32(999999999)

func TestPIDRoundTrip(t *testing.T) {
	sup := New(t.TempDir())

	require.NoError(t, sup.WritePID())
	pid, err := sup.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, int32(os.Getpid()), pid)

	require.NoError(t, sup.RemovePID())
	_, err = sup.ReadPID()
	assert.True(t, os.IsNotExist(err))
}

func TestReadPIDToleratesWhitespace(t *testing.T) {
	sup := New(t.TempDir())
	require.NoError(t, os.WriteFile(sup.PIDPath(), []byte(" 1234\n"), 0o644))

	pid, err := sup.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, int32(1234), pid)
}

func TestReadPIDRejectsGarbage(t *testing.T) {
	sup := New(t.TempDir())
	require.NoError(t, os.WriteFile(sup.PIDPath(), []byte("not-a-pid"), 0o644))

	_, err := sup.ReadPID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pid file")
}

func TestPathsLiveInDataDir(t *testing.T) {
	sup := New("data")
	assert.Equal(t, filepath.Join("data", PIDFileName), sup.PIDPath())
	assert.Equal(t, filepath.Join("data", LogFileName), sup.LogPath())
}

func TestStopWithoutPIDFile(t *testing.T) {
	sup := New(t.TempDir())
	assert.ErrorIs(t, sup.Stop(), ErrNotRunning)
}

func TestStopCleansUpStalePIDFile(t *testing.T) {
	sup := New(t.TempDir())
	require.NoError(t, os.WriteFile(sup.PIDPath(), []byte(strconv.Itoa(int(stalePID))), 0o644))

	err := sup.Stop()
	assert.ErrorIs(t, err, ErrProcessNotFound)

	// the stale file is gone, a following stop reports not running
	assert.ErrorIs(t, sup.Stop(), ErrNotRunning)
}

func TestStartRefusesWhenPIDFilePresent(t *testing.T) {
	sup := New(t.TempDir())
	require.NoError(t, sup.WritePID())

	assert.ErrorIs(t, sup.Start(), ErrAlreadyRunning)
}

func TestOpenProcessNotFound(t *testing.T) {
	_, err := OpenProcess(stalePID)
	assert.ErrorIs(t, err, ErrProcessNotFound)
}

func TestStopTerminatesRunningProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test spawns a unix sleep")
	}

	cmd := exec.Command("sleep", "60")
	require.NoError(t, cmd.Start())
	// reap the child once it dies so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()

	sup := New(t.TempDir())
	require.NoError(t, os.WriteFile(sup.PIDPath(), []byte(strconv.Itoa(cmd.Process.Pid)), 0o644))

	start := time.Now()
	require.NoError(t, sup.Stop())
	assert.Less(t, time.Since(start), gracePeriod, "graceful stop should not need the kill escalation")

	_, err := sup.ReadPID()
	assert.True(t, os.IsNotExist(err), "pid file removed after stop")

	handle, err := OpenProcess(int32(cmd.Process.Pid))
	if err == nil {
		alive, err := handle.Alive()
		require.NoError(t, err)
		assert.False(t, alive)
	}
}
