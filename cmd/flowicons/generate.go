package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aellingwood/flowicons/internal/config"
	"github.com/aellingwood/flowicons/internal/generate"
	"github.com/aellingwood/flowicons/internal/slots"
	"github.com/aellingwood/flowicons/internal/watch"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render all launcher icons",
	Long:  "Render the icon for every Android density bucket and the iOS App Store slot.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watchMode, _ := cmd.Flags().GetBool("watch")
		return runGenerate(cmd, watchMode)
	},
}

func init() {
	generateCmd.Flags().IntP("jobs", "j", 1, "number of icons rendered concurrently")
	generateCmd.Flags().BoolP("watch", "w", false, "regenerate when the config file changes")

	rootCmd.AddCommand(generateCmd)
}

// runGenerate renders every slot once and, in watch mode, again after each
// change to the config file until interrupted.
func runGenerate(cmd *cobra.Command, watchMode bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := generateOnce(ctx, cmd); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	w := watch.New([]string{configPath}, 200*time.Millisecond, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "\nChange detected in %s, regenerating...\n", configPath)
		if err := generateOnce(ctx, cmd); err != nil {
			log.Printf("regeneration failed: %v", err)
		}
	})

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start() }()
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes. Press Ctrl+C to stop.\n", configPath)

	select {
	case <-ctx.Done():
		w.Stop()
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// generateOnce loads the config and renders the full slot table.
func generateOnce(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

	out := cmd.OutOrStdout()
	table := slots.Table(cfg.Layout())
	g := generate.NewGenerator(generate.Options{
		Jobs:    cfg.Jobs,
		Out:     out,
		Verbose: verbose,
	})

	result, err := g.Run(ctx, table)
	if err != nil {
		return err
	}
	printSummary(out, cfg, result)
	return nil
}

func printSummary(out io.Writer, cfg *config.Config, result *generate.Result) {
	fmt.Fprintf(out, "All %d icons created successfully in %s.\n",
		len(result.Slots), result.Duration.Round(time.Millisecond))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Icons were written to:")
	fmt.Fprintf(out, "  Android: %s\n", filepath.Join(cfg.Root, "android", "app", "src", "main", "res", "mipmap-*")+string(os.PathSeparator))
	fmt.Fprintf(out, "  iOS:     %s\n", filepath.Dir(slots.IOSPath(cfg.Root, cfg.IOS.Project))+string(os.PathSeparator))
}
