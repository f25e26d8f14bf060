// Command nuflux computes the cosmogenic neutrino spectrum with and
// without relic-neutrino absorption and writes it as a tab-separated
// table. The output file name encodes the run parameters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nu-flux/nuflux"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $NUFLUX_CONFIG)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := nuflux.NewModel(cfg.modelConfig())
	if err != nil {
		return err
	}

	if eRes, err := m.ResonanceEnergy(); err == nil {
		logger.Info("model ready",
			"neutrino_mass_ev", cfg.NeutrinoMass,
			"resonance_energy_ev", eRes,
			"z_max", cfg.ZMax,
			"z_decay", cfg.ZDecay)
	}

	grid, err := m.EnergyGrid(cfg.Samples)
	if err != nil {
		return err
	}

	logger.Info("sweeping energy grid", "samples", len(grid))
	start := time.Now()
	samples, err := m.Sweep(ctx, grid)
	if err != nil {
		return err
	}
	logger.Info("sweep done", "elapsed", time.Since(start).Round(time.Millisecond))

	name := m.Filename(cfg.OutPrefix)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := m.WriteTable(f, samples); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("spectrum written", "file", name, "samples", len(samples))
	return nil
}
