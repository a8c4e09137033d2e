// Package cmd provides Cobra CLI commands for gstsink.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gstsink/internal/cli"
	"github.com/bnema/gstsink/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "gstsink",
		Short: "Audio and video sink wiring for hardware GStreamer back ends",
		Long: `gstsink configures the audio and video output stages of a GStreamer
playback pipeline: it builds the decode stage and sink of each elementary
stream, waits for the decoded pad to appear and links the sink only when
the decoded media type matches.

The commands below drive a small playback harness so the sink wiring can
be exercised against a real GStreamer install.

Back ends:
  nexus     Broadcom Nexus hardware sinks (brcmaudiosink, brcmvideosink)
  generic   desktop GStreamer (autoaudiosink, autovideosink)

Select the back end in config.toml or with GSTSINK_BACKEND.`,
		SilenceUsage: true,
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
}
