package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nocsim/nocsim/engine"
	"github.com/nocsim/nocsim/metrics"
	"github.com/nocsim/nocsim/simconfig"
	"github.com/nocsim/nocsim/simlog"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		fitness    float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run one simulation and keep serving its metrics on /metrics until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := simconfig.LoadRunConfig(configPath)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			collectors := metrics.NewCollectors(reg)
			return serve(cmd, cfg, fitness, addr, reg, collectors)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a RunConfig YAML file (required)")
	cmd.Flags().StringVar(&addr, "addr", ":9090", "address to serve /metrics on")
	cmd.Flags().Float64Var(&fitness, "fitness", 0, "opaque fitness value copied into the experiment record")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func serve(cmd *cobra.Command, cfg *simconfig.RunConfig, fitness float64, addr string, reg *prometheus.Registry, collectors *metrics.Collectors) error {
	logger := simlog.New(cmd.ErrOrStderr(), zerolog.InfoLevel)

	record, err := engine.Run(context.Background(), cfg, engine.RunOptions{Logger: logger, Fitness: fitness})
	if err != nil {
		return fmt.Errorf("nocsim serve: %w", err)
	}

	collectors.Observe(record.Latency, record.TickCount, conflictValues(record), record.TileUtilization)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	fmt.Fprintf(cmd.OutOrStdout(), "serving metrics for run (latency=%.3f) on %s/metrics\n", record.Latency, addr)

	srv := &http.Server{Addr: addr, Handler: mux}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("nocsim serve: %w", err)
	}
	return nil
}

func conflictValues(record engine.ExperimentRecord) []float64 {
	n := record.ConflictMatrix.Rows()
	out := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out = append(out, record.ConflictMatrix.At(i, j))
		}
	}
	return out
}
