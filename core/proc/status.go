package proc

import "strconv"

// ExitStatus is the status of a terminated process as reported by the
// platform. On unix it is the raw wait status: 0 for a clean exit, the exit
// code shifted left by 8 for a non-zero exit and the signal number in the low
// bits for a killed process.
type ExitStatus int

// ExecFailed is reported for commands that could not be started, it matches
// a process exiting with status 127 as shells do for unknown commands.
const ExecFailed ExitStatus = 127 << 8

// Exited reports whether the process terminated normally.
func (s ExitStatus) Exited() bool {
	return s&0x7f == 0
}

// ExitCode returns the exit code of a normally terminated process, or -1.
func (s ExitStatus) ExitCode() int {
	if !s.Exited() {
		return -1
	}
	return int(s>>8) & 0xff
}

// Signaled reports whether the process was killed by a signal.
func (s ExitStatus) Signaled() bool {
	return s&0x7f != 0x7f && s&0x7f != 0
}

// Signal returns the terminating signal number, or 0.
func (s ExitStatus) Signal() int {
	if !s.Signaled() {
		return 0
	}
	return int(s & 0x7f)
}

func (s ExitStatus) String() string {
	return strconv.Itoa(int(s))
}
