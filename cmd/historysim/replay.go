package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/hosttest"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/tap"
)

func newReplayCmd() *cobra.Command {
	var appConfig, locale string

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Run a scripted session and print every inferred action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			if appConfig != "" {
				sc.AppConfig = appConfig
			}
			if locale != "" {
				sc.Locale = locale
			}
			return Replay(cmd.Context(), sc, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&appConfig, "app-config", "", "app config file, overrides the scenario's")
	cmd.Flags().StringVar(&locale, "locale", "", "language for error messages")
	return cmd
}

// Replay runs sc against a fresh in-memory host and writes one line per
// inferred action and per failed step.
func Replay(ctx context.Context, sc *Scenario, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	h := hosttest.New(hosttest.WithPages(sc.Initial...))
	history, err := minihistory.New(h, minihistory.Options{
		AppConfigPath: sc.AppConfig,
		Locale:        sc.Locale,
		Tap:           tap.New(),
	})
	if err != nil {
		return err
	}
	defer history.Close()

	step := 0
	history.Listen(func(location *host.RouterInfo, action minihistory.Action) error {
		_, err := fmt.Fprintf(out, "%d\t%s\t%s\n", step, action, location.Path)
		return err
	})

	if sc.Name != "" {
		fmt.Fprintf(out, "# %s\n", sc.Name)
	}

	for i, s := range sc.Steps {
		step = i + 1
		kind, _ := s.Kind()

		var err error
		switch kind {
		case "launch":
			h.Launch(s.Launch)
		case "push":
			_, err = history.Push(ctx, s.Push, s.Params)
		case "replace":
			_, err = history.Replace(ctx, s.Replace, s.Params)
		case "back":
			_, err = history.Go(ctx, -*s.Back)
		case "go":
			_, err = history.Go(ctx, *s.Go)
		case "forward":
			_, err = history.GoForward(ctx)
		case "show":
			h.Show()
		case "stack":
			h.SetPages(s.Stack...)
			if len(s.Stack) > 0 {
				h.Store(&host.RouterInfo{Path: s.Stack[len(s.Stack)-1]})
			}
		}

		if err != nil {
			fmt.Fprintf(out, "%d\terror\t%v\n", step, err)
		}
	}

	fmt.Fprintf(out, "final\t%s\t[%s]\n", history.Action(), strings.Join(h.Routes(), " "))
	return nil
}
