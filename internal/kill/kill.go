// Package kill sends graceful termination signals and classifies the
// outcome of each attempt.
package kill

import (
	log "github.com/sirupsen/logrus"
)

// Outcome classifies a single termination attempt.
type Outcome int

const (
	OutcomeSucceeded   Outcome = iota // signal delivered; exit is not awaited
	OutcomeAlreadyGone                // process exited before the signal
	OutcomeDenied                     // insufficient privilege to signal
	OutcomeUnexpected                 // any other OS-level failure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeAlreadyGone:
		return "already-gone"
	case OutcomeDenied:
		return "denied"
	default:
		return "unexpected"
	}
}

// Result reports what happened to a termination attempt. Detail carries the
// OS-provided message for Denied and Unexpected outcomes.
type Result struct {
	Outcome     Outcome
	PID         int
	ProcessName string
	Detail      string
}

// Terminate sends a graceful termination signal (SIGTERM) to pid. One
// best-effort attempt, never retried; the caller decides whether to
// re-resolve the inventory afterwards.
func Terminate(pid int, name string) Result {
	res := classify(pid, name, sendTerm(pid))
	log.WithFields(log.Fields{"pid": pid, "name": name, "outcome": res.Outcome.String()}).Debug("terminate")
	return res
}

func classify(pid int, name string, err error) Result {
	res := Result{PID: pid, ProcessName: name}
	switch {
	case err == nil:
		res.Outcome = OutcomeSucceeded
	case isGone(err):
		res.Outcome = OutcomeAlreadyGone
	case isDenied(err):
		res.Outcome = OutcomeDenied
		res.Detail = err.Error()
	default:
		res.Outcome = OutcomeUnexpected
		res.Detail = err.Error()
	}
	return res
}
