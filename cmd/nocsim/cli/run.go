package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nocsim/nocsim/engine"
	"github.com/nocsim/nocsim/simconfig"
	"github.com/nocsim/nocsim/simlog"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		fitness    float64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation from a YAML run configuration and persist its experiment record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := simconfig.LoadRunConfig(configPath)
			if err != nil {
				return err
			}

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := simlog.New(cmd.ErrOrStderr(), level)

			record, err := engine.Run(context.Background(), cfg, engine.RunOptions{
				Logger:  logger,
				Fitness: fitness,
			})
			if err != nil {
				return fmt.Errorf("nocsim run: %w", err)
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("nocsim run: %w", err)
			}
			path, err := engine.Persist(outDir, cfg.MappingStrategy, cfg.ScheduleStrategy, cfg.ImageNum, record)
			if err != nil {
				return fmt.Errorf("nocsim run: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (latency=%.3f)\n", path, record.Latency)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a RunConfig YAML file (required)")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory to write the experiment record into")
	cmd.Flags().Float64Var(&fitness, "fitness", 0, "opaque fitness value copied into the experiment record")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
