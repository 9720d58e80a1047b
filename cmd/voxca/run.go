package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"voxel-ca/internal/core"
	"voxel-ca/internal/engine"
	"voxel-ca/internal/render"
	"voxel-ca/internal/ruleconf"
	"voxel-ca/pkg/automaton"
)

func newRunCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a preset or program file",
		Long: `Run a preset or program file and print a report.

Examples:
  voxca run --preset tower --set floors=8 --print
  voxca run --program city.yaml --workers 4 --metrics-file run.prom
  voxca run --config run.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := ruleconf.NewViper()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			rc, err := ruleconf.LoadRunConfig(v, configFile)
			if err != nil {
				return err
			}
			logger, err := rc.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return execute(cmd, rc, logger)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML run config file")
	f.String("program", "", "program file to run")
	f.String("preset", "", "preset to run")
	f.Int64("seed", 0, "seed for randomized rules; 0 keeps the program file seed")
	f.Int("workers", 1, "goroutines per generation")
	f.String("log-level", "info", "debug, info, warn or error")
	f.String("log-format", "text", "text or json")
	f.String("metrics-file", "", "write prometheus metrics to this file after the run")
	f.Bool("print", false, "print every layer as a floor plan")
	f.StringToString("set", nil, "preset parameters, e.g. --set w=32,floors=8")
	return cmd
}

// load resolves the grid and program named by rc.
func load(rc ruleconf.RunConfig) (automaton.Grid, engine.Program, error) {
	if rc.Preset != "" {
		factory, ok := core.Presets()[rc.Preset]
		if !ok {
			return nil, engine.Program{}, fmt.Errorf("unknown preset %q (have %v)", rc.Preset, core.PresetNames())
		}
		p := factory(rc.Set)
		g, err := p.Grid()
		if err != nil {
			return nil, engine.Program{}, fmt.Errorf("preset %s: %w", rc.Preset, err)
		}
		return g, p.Program(rc.Seed), nil
	}

	file, err := ruleconf.Load(rc.Program)
	if err != nil {
		return nil, engine.Program{}, err
	}
	if rc.Seed != 0 {
		file.Seed = rc.Seed
	}
	g, err := file.Grid()
	if err != nil {
		return nil, engine.Program{}, fmt.Errorf("%s: %w", rc.Program, err)
	}
	p, err := file.Program()
	if err != nil {
		return nil, engine.Program{}, fmt.Errorf("%s: %w", rc.Program, err)
	}
	return g, p, nil
}

func execute(cmd *cobra.Command, rc ruleconf.RunConfig, logger *slog.Logger) error {
	g, p, err := load(rc)
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(logger), engine.WithWorkers(rc.Workers)}
	var reg *prometheus.Registry
	if rc.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, engine.WithMetrics(engine.NewMetrics(reg)))
	}

	report, err := engine.NewRunner(opts...).Run(cmd.Context(), g, p)
	if err != nil {
		logger.Error("run failed", "program", p.Name, "err", err)
		return err
	}

	out := cmd.OutOrStdout()
	plan := render.FloorPlan{Styled: styled(out)}
	if rc.Print {
		if err := plan.Write(out, g); err != nil {
			return err
		}
	}
	writeReport(out, plan, report)

	if reg != nil {
		if err := prometheus.WriteToTextfile(rc.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", rc.MetricsFile)
	}
	return nil
}

func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.IsTerminal(f)
}

func writeReport(w io.Writer, plan render.FloorPlan, r engine.Report) {
	fmt.Fprintf(w, "%s on %dx%dx%d\n", r.Program, r.Size.X, r.Size.Y, r.Size.Z)
	for _, st := range r.Stages {
		fmt.Fprintf(w, "  %-12s %4d gen %8d changed  %s\n",
			st.Name, st.Generations, st.Changed, st.Elapsed.Round(time.Microsecond))
	}
	fmt.Fprintf(w, "total changed: %d\n", r.Changed())
	fmt.Fprint(w, plan.Legend(r.Census))
}
