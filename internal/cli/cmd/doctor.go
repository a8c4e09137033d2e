package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/cli/styles"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/infrastructure/deps"
	"github.com/bnema/gstsink/internal/infrastructure/gstreamer"
)

var (
	doctorBackend     string
	doctorSkipRuntime bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the back end elements are installed",
	Long: `Doctor checks the GStreamer and GLib versions found by pkg-config, then
looks up every element factory the configured back end needs (decode
stages, sinks, push source) and lists the hardware decoders GStreamer can
find.

Use --backend to check a built-in back end other than the configured one.

Examples:
  gstsink doctor
  gstsink doctor --backend generic
  gstsink doctor --skip-runtime`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorBackend, "backend", "", "Check a built-in back end (nexus, generic) instead of the configured one")
	doctorCmd.Flags().BoolVar(&doctorSkipRuntime, "skip-runtime", false, "Skip the pkg-config version checks")
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	profile, err := app.Profile()
	if err != nil {
		return err
	}
	if doctorBackend != "" {
		p, ok := entity.ProfileByName(doctorBackend)
		if !ok {
			return fmt.Errorf("unknown backend %q", doctorBackend)
		}
		profile = p
	}

	var runtimeOut *usecase.CheckRuntimeDependenciesOutput
	if !doctorSkipRuntime {
		runtimeUC := usecase.NewCheckRuntimeDependenciesUseCase(deps.NewPkgConfigProbe())
		runtimeOut, err = runtimeUC.Execute(app.Ctx(), usecase.CheckRuntimeDependenciesInput{
			Prefix: app.Config.GStreamer.Prefix,
		})
		if err != nil {
			return err
		}
	}

	app.InitGStreamer()

	uc := usecase.NewCheckBackendUseCase(gstreamer.NewElementFactory())
	out, err := uc.Execute(app.Ctx(), usecase.CheckBackendInput{Profile: profile})
	if err != nil {
		return err
	}

	report := doctorReport(out)
	if runtimeOut != nil {
		report.Runtime = runtimeReport(runtimeOut)
		report.OverallOK = report.OverallOK && runtimeOut.OK
	}

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OverallOK {
		return fmt.Errorf("backend %q is not ready", out.Backend)
	}
	return nil
}

func runtimeReport(out *usecase.CheckRuntimeDependenciesOutput) *styles.DoctorRuntimeReport {
	report := &styles.DoctorRuntimeReport{
		Prefix: out.Prefix,
		OK:     out.OK,
		Checks: make([]styles.DoctorRuntimeCheck, 0, len(out.Checks)),
	}
	for _, c := range out.Checks {
		report.Checks = append(report.Checks, styles.DoctorRuntimeCheck{
			Name:            c.DisplayName,
			PkgConfigName:   c.PkgConfigName,
			Installed:       c.Installed,
			Version:         c.Version,
			RequiredVersion: c.RequiredVersion,
			OK:              c.MeetsRequirement,
			Error:           c.Error,
		})
	}
	return report
}

func doctorReport(out *usecase.CheckBackendOutput) styles.DoctorReport {
	report := styles.DoctorReport{
		OverallOK: out.OK,
		Backend:   out.Backend,
		HWAccel:   out.HWAccel,
		StalePTS:  out.StalePTS,
		Warnings:  out.Warnings,
		Elements:  make([]styles.DoctorElement, 0, len(out.Elements)),
		Decoders:  make([]styles.DoctorDecoder, 0, len(out.Decoders)),
	}
	for _, e := range out.Elements {
		report.Elements = append(report.Elements, styles.DoctorElement{
			Role:      e.Role,
			Factory:   e.Factory,
			Available: e.Available,
		})
	}
	for _, d := range out.Decoders {
		report.Decoders = append(report.Decoders, styles.DoctorDecoder{Codec: d.Codec, Factories: d.Factories})
	}
	return report
}
