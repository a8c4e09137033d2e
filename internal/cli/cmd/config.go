package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gstsink/internal/cli/styles"
	"github.com/bnema/gstsink/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Print the active configuration or write a default config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration as TOML",
	Long: `Print the configuration after defaults, the config file and GSTSINK_*
environment variables have been merged.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write config.toml with every default setting. An existing file is
kept unless --force is given.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	data, err := config.Encode(app.Config)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Fprintln(os.Stderr, renderer.RenderConfigPath(app.Manager.GetConfigFile(), app.Config.Backend))
	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFilePath()

	// Load() creates the file on first run; an existing one is only replaced on request.
	if _, err := os.Stat(path); err == nil && !configForce {
		fmt.Println(renderer.RenderExists(path))
		return nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderWritten(path))
	return nil
}
