package model

// StateListen is the only socket state the inventory tracks.
const StateListen = "LISTEN"

// NameUnknown is substituted when the owning process cannot be resolved:
// it exited between enumeration and lookup, or the lookup was denied.
const NameUnknown = "unknown"

// PortBinding is one row of the port inventory: a TCP port in LISTEN state
// and the process that owned it at observation time. A binding is a
// point-in-time snapshot and is never mutated; a refresh replaces the
// whole sequence.
type PortBinding struct {
	Port        int    `json:"port"`
	PID         int    `json:"pid"`
	ProcessName string `json:"process"`
	State       string `json:"state"`
}
