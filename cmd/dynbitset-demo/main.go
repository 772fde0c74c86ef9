// Command dynbitset-demo exercises the dynbitset API and writes the results
// as "Size: <n> | <bits>" lines to a file.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dynbitset/internal/logging"
)

// Config controls a driver run.
type Config struct {
	Out       string
	LogLevel  string
	LogFormat string
	Parallel  int
	Shift     int
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Out:       "1.out",
		LogLevel:  "info",
		LogFormat: "text",
		Parallel:  4,
		Shift:     32,
	}
}

func parseFlags(args []string, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("dynbitset-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "maximum scenarios evaluated concurrently")
	fs.IntVar(&cfg.Shift, "shift", cfg.Shift, "right shift applied to the doubled input")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Parallel < 1 {
		return Config{}, fmt.Errorf("parallel must be positive, got %d", cfg.Parallel)
	}
	return cfg, nil
}

func newLogger(cfg Config, w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "text":
		return logging.NewTextLogger(w, level), nil
	case "json":
		return logging.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

// evaluate runs every scenario and returns their lines in scenario order.
func evaluate(ctx context.Context, cfg Config, logger *logging.Logger) ([][]string, error) {
	results := make([][]string, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)

	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := sc.run(cfg)
			logger.LogScenario(ctx, sc.name, len(lines), err)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.name, err)
			}
			results[i] = lines
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func write(path string, results [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, lines := range results {
		for _, line := range lines {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func run(ctx context.Context, cfg Config, logger *logging.Logger) error {
	start := time.Now()

	results, err := evaluate(ctx, cfg, logger)
	if err == nil {
		err = write(cfg.Out, results)
	}

	logger.LogRun(ctx, cfg.Out, len(scenarios), time.Since(start), err)
	return err
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		stop()
		os.Exit(1)
	}
}
