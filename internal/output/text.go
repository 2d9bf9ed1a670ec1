// Package output renders the port inventory for non-interactive use.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pui-dev/pui/pkg/model"
)

func RenderText(w io.Writer, bindings []model.PortBinding) {
	if len(bindings) == 0 {
		fmt.Fprintln(w, "No processes listening on ports found (may require sudo)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PORT\tPID\tPROCESS\tSTATE")
	for _, b := range bindings {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", b.Port, b.PID, b.ProcessName, b.State)
	}
	tw.Flush() //nolint:errcheck
}
