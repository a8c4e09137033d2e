package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/cli/styles"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Show the capabilities of the configured back end",
	Long: `Print static capability flags of the configured back end: whether its
sinks accept stale presentation timestamps, the volume scale and how
end-of-stream is signalled. No GStreamer element is created.`,
	RunE: runCaps,
}

func init() {
	rootCmd.AddCommand(capsCmd)
}

func runCaps(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	profile, err := app.Profile()
	if err != nil {
		return err
	}

	out := usecase.NewQueryCapabilitiesUseCase(profile).Execute()
	fmt.Println(styles.NewPlaybackRenderer(app.Theme).RenderCapabilities(styles.CapabilitiesView{
		Backend:     out.Backend,
		StalePTS:    out.CanReportStalePTS,
		VolumeScale: out.VolumeScale,
		EOSMode:     string(out.EOSMode),
	}))
	return nil
}
