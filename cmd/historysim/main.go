// Command historysim drives minihistory against an in-memory host.
//
// It is meant for checking how a sequence of page stack changes will be
// classified before shipping an app that relies on it:
//
//	historysim replay testdata/demo.yaml
//	historysim infer --prev pages/a,pages/b --cur pages/a --tabs pages/a
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "historysim",
		Short:         "Simulate mini-program navigation and print the inferred history actions",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				minihistory.SetRawLogLevel(logLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "library log level (debug, info, warn, error)")

	root.AddCommand(newReplayCmd(), newInferCmd())
	return root
}
