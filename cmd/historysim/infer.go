package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/router"
)

func newInferCmd() *cobra.Command {
	var prev, cur, tabs []string

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Classify a single page stack change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := router.Infer(router.NewSnapshot(prev), router.NewSnapshot(cur), router.NewTabIndex(tabs))
			if action == router.ActionNone {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), action)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&prev, "prev", nil, "previous stack, bottom first")
	cmd.Flags().StringSliceVar(&cur, "cur", nil, "current stack, bottom first")
	cmd.Flags().StringSliceVar(&tabs, "tabs", nil, "tab bar page paths")
	return cmd
}
