// Package ports resolves TCP listening ports to their owning processes.
//
// Two backends feed the same shaping pipeline: the native socket table
// (gopsutil) and an external lsof invocation. Whichever backend is active,
// the output contract is identical: a deduplicated inventory sorted
// ascending by port, one binding per port, with "unknown" substituted for
// processes that exited or cannot be inspected.
package ports

import (
	"sort"

	"github.com/shirou/gopsutil/v4/process"
	log "github.com/sirupsen/logrus"

	"github.com/pui-dev/pui/pkg/model"
)

// Entry is one raw socket record as reported by a backend, before any
// shaping. PID is 0 when the backend could not attribute the socket to a
// process (kernel-owned sockets, missing fd permissions).
type Entry struct {
	Port  int
	PID   int
	State string
}

// Backend enumerates the OS TCP socket table.
type Backend interface {
	Name() string
	Entries() ([]Entry, error)
}

// NameLookup resolves a PID to a display name.
type NameLookup func(pid int) (string, error)

func gopsutilName(pid int) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return p.Name()
}

// Resolver shapes raw backend entries into the port inventory. It holds no
// state between calls; each Resolve is an independent snapshot of OS state.
type Resolver struct {
	backend Backend
	lookup  NameLookup
}

func NewResolver(b Backend) *Resolver {
	return &Resolver{backend: b, lookup: gopsutilName}
}

func NewResolverWithLookup(b Backend, lookup NameLookup) *Resolver {
	return &Resolver{backend: b, lookup: lookup}
}

func (r *Resolver) BackendName() string { return r.backend.Name() }

// Resolve returns the current inventory. It never fails: an unusable
// backend (missing privilege, missing tool) yields an empty inventory,
// which the UI presents as a normal "no data" state rather than an error.
func (r *Resolver) Resolve() []model.PortBinding {
	entries, err := r.backend.Entries()
	if err != nil {
		log.WithError(err).WithField("backend", r.backend.Name()).Debug("socket enumeration failed")
		return nil
	}

	seen := make(map[int]bool, len(entries))
	bindings := make([]model.PortBinding, 0, len(entries))
	for _, e := range entries {
		if e.State != model.StateListen || e.PID <= 0 {
			continue
		}
		if seen[e.Port] {
			// First occurrence wins, e.g. dual-stack v4/v6 pairs on the
			// same port.
			continue
		}
		seen[e.Port] = true

		name, err := r.lookup(e.PID)
		if err != nil || name == "" {
			// The process exited between enumeration and lookup, or the
			// lookup was denied. The socket is still real; keep the row.
			name = model.NameUnknown
		}

		bindings = append(bindings, model.PortBinding{
			Port:        e.Port,
			PID:         e.PID,
			ProcessName: name,
			State:       model.StateListen,
		})
	}

	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Port < bindings[j].Port
	})

	log.WithFields(log.Fields{"backend": r.backend.Name(), "bindings": len(bindings)}).Debug("resolved inventory")
	return bindings
}

// Detect probes for a usable backend at startup: the native socket table
// when it is readable, otherwise the lsof fallback.
func Detect() *Resolver {
	native := NativeBackend{}
	if _, err := native.Entries(); err == nil {
		return NewResolver(native)
	}
	log.Debug("native socket table unavailable, falling back to lsof")
	return NewResolver(LsofBackend{})
}
