package ports

import (
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pui-dev/pui/pkg/model"
)

// LsofBackend shells out to lsof for the socket table. The arguments select
// TCP, listening-only sockets with numeric hosts and ports, in parseable
// field output (one field per line: p<pid>, c<command>, n<address>).
type LsofBackend struct{}

func (LsofBackend) Name() string { return "lsof" }

func (LsofBackend) Entries() ([]Entry, error) {
	out, err := runLsof()
	if err != nil {
		// lsof exits non-zero when nothing matches, and is simply absent
		// on some systems. Either way this is an empty table, not a fault.
		log.WithError(err).Debug("lsof unavailable")
		return nil, nil
	}
	return parseLsofOutput(string(out)), nil
}

func runLsof() ([]byte, error) {
	cmd := exec.Command("lsof", "-iTCP", "-sTCP:LISTEN", "-P", "-n", "-F", "pcn")
	// Stdin stays nil so the child sees an empty stdin.
	return cmd.Output()
}

// parseLsofOutput parses `lsof -F pcn` output. Listening state is implied
// by the -sTCP:LISTEN argument. Records that fail to parse are dropped;
// command fields are ignored so that name resolution stays with the shared
// pipeline for both backends.
func parseLsofOutput(content string) []Entry {
	var entries []Entry
	pid := 0

	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case 'p':
			n, err := strconv.Atoi(line[1:])
			if err != nil {
				pid = 0
				continue
			}
			pid = n
		case 'n':
			if pid <= 0 {
				continue
			}
			port, ok := parsePort(line[1:])
			if !ok {
				continue
			}
			entries = append(entries, Entry{
				Port:  port,
				PID:   pid,
				State: model.StateListen,
			})
		}
	}
	return entries
}

// parsePort extracts the local port from an lsof address field. Accepted
// forms: "addr:port", "*:port", "[v6addr]:port", and the macOS
// dot-separated "addr.port".
func parsePort(addr string) (int, bool) {
	if strings.HasPrefix(addr, "[") {
		end := strings.LastIndex(addr, "]")
		if end == -1 || end+1 >= len(addr) {
			return 0, false
		}
		rest := addr[end+1:]
		if rest[0] != ':' && rest[0] != '.' {
			return 0, false
		}
		return atoiPort(rest[1:])
	}

	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return atoiPort(addr[idx+1:])
	}

	// macOS lsof/netstat style: "127.0.0.1.8080"
	if idx := strings.LastIndex(addr, "."); idx != -1 {
		return atoiPort(addr[idx+1:])
	}

	return 0, false
}

func atoiPort(s string) (int, bool) {
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, false
	}
	return port, true
}
