package main

import (
	"fmt"

	"github.com/aellingwood/flowicons/internal/generate"
	"github.com/aellingwood/flowicons/internal/slots"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated icons are current",
	Long: "Render every icon in memory and compare it with the file on disk.\n" +
		"Exits non-zero if any icon is missing, the wrong size, or out of date.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		table := slots.Table(cfg.Layout())
		drifts, err := generate.NewGenerator(generate.Options{Out: out}).Check(table)
		if err != nil {
			return err
		}
		if len(drifts) == 0 {
			fmt.Fprintf(out, "All %d icons are up to date.\n", len(table))
			return nil
		}
		return fmt.Errorf("%d of %d icons need regenerating; run flowicons generate", len(drifts), len(table))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
