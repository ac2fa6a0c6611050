package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"transit/internal/config"
	"transit/internal/registry"
	"transit/internal/trace"
	"transit/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

// flags holds command-line overrides of the config file.
type flags struct {
	configPath    string
	peoplePath    string
	panel         string
	skipLoader    bool
	reducedMotion bool
	noMouse       bool
	logFile       string
	logLevel      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "transit",
		Short:        "TRANSIT community site in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&f.peoplePath, "people", "", "TOML or YAML file replacing the built-in owners and pros")

	rf := root.Flags()
	rf.StringVar(&f.panel, "panel", "", "panel to open on: welcome, owners, pros or map")
	rf.BoolVar(&f.skipLoader, "skip-loader", false, "skip the loading splash")
	rf.BoolVar(&f.reducedMotion, "reduced-motion", false, "no decorative animation and no transition delays")
	rf.BoolVar(&f.noMouse, "no-mouse", false, "ignore mouse input")
	rf.StringVar(&f.logFile, "log-file", "", `log file ("-" disables logging)`)
	rf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(f.configPath)
				if err != nil {
					return err
				}
				return config.Print(cfg, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "people",
			Short: "List the owners and pros that would be shown",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(f.configPath)
				if err != nil {
					return err
				}
				reg, err := loadRegistry(f.peoplePath, cfg)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, p := range reg.Owners() {
					fmt.Fprintf(w, "owner  %-12s @%s\n", p.Name, p.Handle)
				}
				for _, p := range reg.Pros() {
					fmt.Fprintf(w, "pro    %-12s @%s  %s\n", p.Name, p.Handle, p.ProfileURL)
				}
				return nil
			},
		},
	)
	return root
}

func run(ctx context.Context, f flags) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal")
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, f)

	start := ui.PanelWelcome
	if cfg.UI.StartPanel != "" {
		p, err := ui.ParsePanel(cfg.UI.StartPanel)
		if err != nil {
			return err
		}
		start = p
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	reg, err := loadRegistry(f.peoplePath, cfg)
	if err != nil {
		return err
	}

	recorder, err := newRecorder(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry disabled", "err", err)
		recorder = trace.NewRecorder(cfg.Telemetry.MaxSpans, nil)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Close(shutdownCtx); err != nil {
			logger.Warn("closing trace", "err", err)
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Config:     cfg,
		Registry:   reg,
		Recorder:   recorder,
		Logger:     logger,
		StartPanel: start,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info("starting", "version", version, "panel", start)
	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func applyFlags(cfg *config.Config, f flags) {
	if f.panel != "" {
		cfg.UI.StartPanel = f.panel
	}
	if f.skipLoader {
		cfg.UI.SkipLoader = true
	}
	if f.reducedMotion {
		cfg.UI.ReducedMotion = true
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
}

// loadRegistry prefers the --people flag, then people_file, then the
// built-in data.
func loadRegistry(path string, cfg *config.Config) (*registry.Registry, error) {
	if path == "" {
		path = cfg.PeopleFile
	}
	if path == "" {
		return registry.Default(), nil
	}
	return registry.Load(path)
}

// newLogger opens the log file. The program owns the terminal, so logs
// never go to stderr.
func newLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	if c.File == "" || c.File == "-" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	file, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(file, hopts)
	if c.Format == "json" {
		h = slog.NewJSONHandler(file, hopts)
	}
	return slog.New(h), func() { file.Close() }, nil
}

func newRecorder(ctx context.Context, c config.TelemetryConfig) (*trace.Recorder, error) {
	exp, err := trace.NewOTLPExporter(ctx, c.OTLPEndpoint, c.ServiceName)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return trace.NewRecorder(c.MaxSpans, nil), nil
	}
	return trace.NewRecorder(c.MaxSpans, exp), nil
}
