package main

import (
	"fmt"

	"github.com/aellingwood/flowicons/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flowicons",
	Short: "Generate the Flow Max launcher icons",
	Long: "Flowicons draws the Flow Max cat icon at every Android density and the iOS\n" +
		"App Store size, writing PNG files into the mobile project's asset folders.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, false)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().String("root", "", "project root the asset paths are relative to")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the configuration for cmd: the config file (optional
// unless named explicitly), then any flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, _ := flags.GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if flags.Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overrides := make(map[string]any)
	if flags.Changed("root") {
		root, _ := flags.GetString("root")
		overrides["root"] = root
	}
	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		jobs, _ := cmd.Flags().GetInt("jobs")
		overrides["jobs"] = jobs
	}
	if err := cfg.WithOverrides(overrides).Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
