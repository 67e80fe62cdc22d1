// Command projectile launches a projectile and reports its position on every
// tick until it hits the ground.
//
// Usage:
//
//	projectile [-config file.json] [-speed 100] [-wind -0.01,0,0] [-out file://runs]
//	projectile -sweep 10,50,100 -out s3://bucket/runs
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/hupe1980/rtc"
	"github.com/hupe1980/rtc/blobstore"
	"github.com/hupe1980/rtc/projectile"
	"github.com/hupe1980/rtc/trajectory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("projectile: %v", err)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("projectile: %v", err)
	}
}

func run(ctx context.Context, cfg Config, stdout io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := rtc.NewTextLogger(level)
	if cfg.JSONLog {
		logger = rtc.NewJSONLogger(level)
	}

	metrics := &rtc.BasicMetricsCollector{}
	opts := []projectile.Option{
		projectile.WithMaxTicks(cfg.MaxTicks),
		projectile.WithLogger(logger),
		projectile.WithMetrics(metrics),
	}
	if cfg.Rate > 0 {
		opts = append(opts, projectile.WithLimiter(rate.NewLimiter(rate.Limit(cfg.Rate), 1)))
	}

	var exporter *trajectory.Exporter
	if cfg.Out != "" {
		store, err := openStore(ctx, cfg.Out)
		if err != nil {
			return err
		}
		c, err := trajectory.ParseCompression(cfg.Compression)
		if err != nil {
			return err
		}
		exporter = trajectory.NewExporter(store,
			trajectory.WithCompression(c),
			trajectory.WithLogger(logger),
			trajectory.WithMetrics(metrics),
		)
	} else {
		opts = append(opts, projectile.WithRecord(false))
	}

	env := cfg.Environment()

	if len(cfg.Sweep) > 0 {
		err = sweep(ctx, cfg, env, exporter, stdout, opts)
	} else {
		err = single(ctx, cfg, env, exporter, stdout, opts)
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "done",
		"runs", stats.RunCount,
		"failed", stats.RunErrors,
		"ticks", stats.RunTicks,
		"exports", stats.ExportCount,
		"bytes", stats.ExportBytes,
	)
	return err
}

func single(ctx context.Context, cfg Config, env projectile.Environment, exporter *trajectory.Exporter, stdout io.Writer, opts []projectile.Option) error {
	if !cfg.Quiet {
		opts = append(opts, projectile.WithObserver(func(s projectile.Sample) {
			fmt.Fprintf(stdout, "Position: %v Ticks: %d\n", s.Position, s.Tick)
		}))
	}

	res, err := projectile.Simulate(ctx, env, cfg.Launch(cfg.Speed), opts...)
	printSummary(stdout, cfg.Speed, res, err)
	if err != nil {
		return err
	}

	if exporter != nil {
		name, err := exporter.Export(ctx, cfg.Name, res.Trajectory)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Trajectory: %s\n", name)
	}
	return nil
}

func sweep(ctx context.Context, cfg Config, env projectile.Environment, exporter *trajectory.Exporter, stdout io.Writer, opts []projectile.Option) error {
	launches := make([]projectile.Projectile, len(cfg.Sweep))
	for i, speed := range cfg.Sweep {
		launches[i] = cfg.Launch(speed)
	}

	results, err := projectile.Sweep(ctx, env, launches, opts...)
	for i, res := range results {
		printSummary(stdout, cfg.Sweep[i], res, nil)
	}
	if err != nil {
		return err
	}

	if exporter != nil {
		for i, res := range results {
			name, err := exporter.Export(ctx, blobstore.Join(cfg.Name, fmt.Sprintf("speed-%g", cfg.Sweep[i])), res.Trajectory)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Trajectory: %s\n", name)
		}
	}
	return nil
}

func printSummary(w io.Writer, speed float64, res projectile.Result, err error) {
	status := "landed"
	if !res.Landed() || err != nil {
		status = "airborne"
	}
	fmt.Fprintf(w, "Speed: %g Ticks: %d Final: %v Status: %s\n", speed, res.Ticks, res.Final.Position, status)
}
