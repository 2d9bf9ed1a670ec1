//go:build !windows

package kill

import (
	"errors"
	"syscall"
)

func sendTerm(pid int) error { return syscall.Kill(pid, syscall.SIGTERM) }

// ESRCH: no such process. EPERM: the process exists but signalling it is
// not permitted.
func isGone(err error) bool   { return errors.Is(err, syscall.ESRCH) }
func isDenied(err error) bool { return errors.Is(err, syscall.EPERM) }
