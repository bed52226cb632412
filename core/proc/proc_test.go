package proc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher() (*Launcher, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Launcher{Stdin: strings.NewReader(""), Stdout: out, Stderr: out}, out
}

func TestLauncherSpawnWait(t *testing.T) {
	launcher, out := newTestLauncher()

	handle, err := launcher.Spawn([]string{"echo", "hello", "world"})
	require.NoError(t, err)
	assert.NotZero(t, handle)
	assert.Equal(t, 1, launcher.Running())

	status, err := launcher.Wait(handle)
	require.NoError(t, err)
	assert.Equal(t, ExitStatus(0), status)
	assert.Equal(t, 0, launcher.Running())
	assert.Equal(t, "hello world\n", out.String())
}

func TestLauncherExitStatus(t *testing.T) {
	cases := map[string]struct {
		argv     []string
		exitCode int
	}{
		"true":   {[]string{"true"}, 0},
		"false":  {[]string{"false"}, 1},
		"exit-3": {[]string{"sh", "-c", "exit 3"}, 3},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			launcher, _ := newTestLauncher()

			handle, err := launcher.Spawn(tc.argv)
			require.NoError(t, err)
			status, err := launcher.Wait(handle)
			require.NoError(t, err)

			assert.True(t, status.Exited())
			assert.False(t, status.Signaled())
			assert.Equal(t, tc.exitCode, status.ExitCode())
			assert.Equal(t, ExitStatus(tc.exitCode<<8), status)
		})
	}
}

func TestLauncherSignaled(t *testing.T) {
	launcher, _ := newTestLauncher()

	handle, err := launcher.Spawn([]string{"sh", "-c", "kill -9 $$"})
	require.NoError(t, err)
	status, err := launcher.Wait(handle)
	require.NoError(t, err)

	assert.True(t, status.Signaled())
	assert.Equal(t, 9, status.Signal())
	assert.Equal(t, -1, status.ExitCode())
}

func TestLauncherArgumentsVerbatim(t *testing.T) {
	launcher, out := newTestLauncher()

	handle, err := launcher.Spawn([]string{"printf", "%s|", "a b", "$HOME", "*"})
	require.NoError(t, err)
	_, err = launcher.Wait(handle)
	require.NoError(t, err)

	assert.Equal(t, "a b|$HOME|*|", out.String())
}

func TestLauncherEnvAndDir(t *testing.T) {
	launcher, out := newTestLauncher()
	launcher.Env = []string{"BATCHSH_TEST=yes"}
	launcher.Dir = t.TempDir()

	handle, err := launcher.Spawn([]string{"sh", "-c", `echo "$BATCHSH_TEST"; pwd`})
	require.NoError(t, err)
	_, err = launcher.Wait(handle)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "yes", lines[0])
	assert.NotEmpty(t, lines[1])
}

func TestLauncherIndependentHandles(t *testing.T) {
	launcher, _ := newTestLauncher()

	first, err := launcher.Spawn([]string{"true"})
	require.NoError(t, err)
	second, err := launcher.Spawn([]string{"true"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	for _, h := range []Handle{second, first} {
		status, err := launcher.Wait(h)
		require.NoError(t, err)
		assert.Equal(t, ExitStatus(0), status)
	}
}

func TestLauncherWaitTwice(t *testing.T) {
	launcher, _ := newTestLauncher()

	handle, err := launcher.Spawn([]string{"true"})
	require.NoError(t, err)
	_, err = launcher.Wait(handle)
	require.NoError(t, err)

	_, err = launcher.Wait(handle)
	assert.True(t, errors.Is(err, ErrUnknownHandle))
}

func TestLauncherErrors(t *testing.T) {
	launcher, _ := newTestLauncher()

	_, err := launcher.Spawn(nil)
	assert.True(t, errors.Is(err, ErrEmptyArgv))

	_, err = launcher.Spawn([]string{"batchsh-no-such-program"})
	assert.True(t, errors.Is(err, ErrExec))
	assert.Contains(t, err.Error(), "batchsh-no-such-program")
	assert.Equal(t, 0, launcher.Running())
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, "0", ExitStatus(0).String())
	assert.Equal(t, "256", ExitStatus(256).String())
	assert.Equal(t, 127, ExecFailed.ExitCode())
	assert.True(t, ExecFailed.Exited())
	assert.Equal(t, 0, ExitStatus(256).Signal())
}
