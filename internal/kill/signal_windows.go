//go:build windows

package kill

import "fmt"

func sendTerm(pid int) error {
	return fmt.Errorf("terminating processes is not supported on Windows")
}

func isGone(err error) bool   { return false }
func isDenied(err error) bool { return false }
