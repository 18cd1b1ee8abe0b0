package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/svgforge/svgforge/pkg/audit"
	"github.com/svgforge/svgforge/pkg/logger"
	"github.com/svgforge/svgforge/svc/optimize"
)

// fileConfig mirrors the optimize command flags; flags win over file values.
type fileConfig struct {
	MaxSize   int    `yaml:"maxSize"`
	Sanitize  *bool  `yaml:"sanitize"`
	CamelCase *bool  `yaml:"camelCase"`
	Output    string `yaml:"output"`
	AuditDB   string `yaml:"auditDb"`
}

type optimizeFlags struct {
	configPath  string
	output      string
	auditDB     string
	maxSize     int
	noSanitize  bool
	noCamelCase bool
	concurrency int
	verbose     bool
}

func newOptimizeCmd() *cobra.Command {
	var flags optimizeFlags

	cmd := &cobra.Command{
		Use:   "optimize [files...]",
		Short: "Run SVG files through the optimization pipeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default: overwrite in place)")
	cmd.Flags().StringVar(&flags.auditDB, "audit-db", "", "SQLite file for the audit trail")
	cmd.Flags().IntVar(&flags.maxSize, "max-size", 0, "maximum document size in bytes")
	cmd.Flags().BoolVar(&flags.noSanitize, "no-sanitize", false, "skip sanitization, report findings only")
	cmd.Flags().BoolVar(&flags.noCamelCase, "no-camelcase", false, "keep hyphenated attribute names")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", runtime.NumCPU(), "number of files processed in parallel")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every processed file")

	return cmd
}

func runOptimize(cmd *cobra.Command, args []string, flags optimizeFlags) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
	)

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	svcOpts := []optimize.ServiceOption{optimize.WithLogger(log)}

	if cfg.AuditDB != "" {
		storage, err := audit.NewSQLiteStorage(cfg.AuditDB)
		if err != nil {
			return fmt.Errorf("open audit db: %w", err)
		}
		defer storage.Close()
		svcOpts = append(svcOpts, optimize.WithRecorder(audit.NewRecorder(storage, log)))
	}

	svc := optimize.NewService(optimize.Config{
		MaxBytes:        cfg.MaxSize,
		SanitizeDefault: cfg.Sanitize == nil || *cfg.Sanitize,
	}, svcOpts...)

	if cfg.Output != "" {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	concurrency := flags.concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var totalSaved atomic.Int64
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	for _, path := range args {
		path := path
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			resp, err := svc.Process(ctx, optimize.Request{
				Content:   string(raw),
				Filename:  filepath.Base(path),
				Sanitize:  cfg.Sanitize,
				CamelCase: cfg.CamelCase,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			for _, warning := range resp.SecurityWarnings {
				log.Warn(warning, "file", path)
			}

			dest := path
			if cfg.Output != "" {
				dest = filepath.Join(cfg.Output, filepath.Base(path))
			}
			if err := os.WriteFile(dest, []byte(resp.Result), 0o644); err != nil {
				return fmt.Errorf("%s: %w", dest, err)
			}

			totalSaved.Add(int64(resp.Optimization.SavedBytes))
			log.Debug("optimized",
				"file", path,
				"saved", resp.Optimization.SavedPercent,
				"ratio", resp.Optimization.Ratio,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "optimized %d file(s), saved %d bytes\n", len(args), totalSaved.Load())
	return nil
}

// resolveConfig merges the YAML config file with the command flags. A flag
// the user set always wins over the file value.
func resolveConfig(flags optimizeFlags) (fileConfig, error) {
	var cfg fileConfig

	if flags.configPath != "" {
		raw, err := os.ReadFile(flags.configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Join(errors.New("parse config"), err)
		}
	}

	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.auditDB != "" {
		cfg.AuditDB = flags.auditDB
	}
	if flags.maxSize > 0 {
		cfg.MaxSize = flags.maxSize
	}
	if flags.noSanitize {
		f := false
		cfg.Sanitize = &f
	}
	if flags.noCamelCase {
		f := false
		cfg.CamelCase = &f
	}

	return cfg, nil
}
