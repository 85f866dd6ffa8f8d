// Package cmd provides Cobra CLI commands for floatdesk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/floatdesk/internal/cli"
	"github.com/bnema/floatdesk/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "floatdesk",
		Short: "A floating panel desk for the terminal",
		Long: `floatdesk - floating panels you can drag, resize, minimize and stack.

Panels live on a desk between a header band and a footer tray. Each panel
shows content from a provider: notes rendered from markdown, the help
sheet, or JavaScript providers dropped into the script directory.

Features:
  - Mouse drag by the header, resize from the right and bottom edges
  - Minimize to the tray, maximize, close with a short fade
  - Keyboard cycling, quick select and nudging
  - Fit every panel to the screen in a grid
  - Single-panel tab mode on narrow terminals
  - Layout saved automatically and restored on the next start

Run 'floatdesk' or 'floatdesk desk' to open the desk, or explore the
subcommands to inspect, export and import stored layouts.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		// Without a subcommand the desk opens.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesk(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Short()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
