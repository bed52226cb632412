//go:build !windows && !plan9

package proc

import (
	"os"
	"syscall"
)

func statusOf(state *os.ProcessState) ExitStatus {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		return ExitStatus(ws)
	}
	return ExitStatus(state.ExitCode() << 8)
}
