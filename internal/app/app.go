// Package app wires the CLI surface: the root command starts the TUI, and
// `list` prints a one-shot inventory.
package app

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pui-dev/pui/internal/output"
	"github.com/pui-dev/pui/internal/ports"
	"github.com/pui-dev/pui/internal/tui"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit
		if buildDate != "" {
			s += ", " + buildDate
		}
		s += ")"
	}
	return s
}

var (
	backendFlag string
	logFileFlag string
	jsonFlag    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pui",
		Short:         "Terminal UI for processes listening on TCP ports",
		Long:          "pui is an interactive terminal tool to inspect and terminate processes listening on TCP ports.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := resolverForBackend(backendFlag)
			if err != nil {
				return err
			}
			return tui.Start(resolver, version)
		},
	}
	rootCmd.SetVersionTemplate("pui {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "auto",
		`socket table backend: "auto", "native", or "lsof"`)
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "",
		"write debug logs to this file (the TUI owns the terminal)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the current port inventory and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := resolverForBackend(backendFlag)
			if err != nil {
				return err
			}
			bindings := resolver.Resolve()
			if jsonFlag {
				s, err := output.ToJSON(bindings)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			output.RenderText(cmd.OutOrStdout(), bindings)
			return nil
		},
	}
	listCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)

	return rootCmd
}

func resolverForBackend(name string) (*ports.Resolver, error) {
	switch name {
	case "auto":
		return ports.Detect(), nil
	case "native":
		return ports.NewResolver(ports.NativeBackend{}), nil
	case "lsof":
		return ports.NewResolver(ports.LsofBackend{}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, native, or lsof)", name)
	}
}

func setupLogging() error {
	if logFileFlag == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
