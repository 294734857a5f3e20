package main

import (
	"fmt"

	"github.com/aellingwood/flowicons/internal/slots"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List icon slots",
	Long:  "List every icon slot with its platform, pixel size, and output path.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range slots.Table(cfg.Layout()) {
			fmt.Fprintf(out, "%-8s  %-7s  %9s  %s\n", s.Name, s.Platform, s.Dimensions(), s.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
