//go:build windows || plan9

package proc

import "os"

// Platforms without wait statuses get the unix encoding of the exit code.
func statusOf(state *os.ProcessState) ExitStatus {
	return ExitStatus((state.ExitCode() & 0xff) << 8)
}
