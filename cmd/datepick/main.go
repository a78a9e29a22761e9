package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloudeng.io/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"datepick/internal/config"
	"datepick/internal/dateadapter"
	"datepick/internal/ui"
)

var (
	// errCancelled is returned when the user closes the picker without a selection.
	errCancelled = errors.New("selection cancelled")
	// errIncomplete is returned when a range was committed without an end date.
	errIncomplete = errors.New("selection incomplete: range has no end date")
)

type options struct {
	configPath string
	mode       string
	start      string
	actions    string
	logFile    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "datepick",
		Short: "Pick a date or a date range in the terminal",
		Long: `datepick shows a calendar in the terminal and prints the selected
date, or the start and end of the selected range, to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the config file")
	flags.StringVarP(&opts.mode, "mode", "m", "", "Selection mode: single or range")
	flags.StringVarP(&opts.start, "start", "s", "", "Date the cursor starts on")
	flags.StringVar(&opts.actions, "actions", "", "Require apply/cancel before committing (true/false)")
	flags.StringVar(&opts.logFile, "log-file", "datepick.log", "Log file, empty to disable logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Set up logging
	log.SetOutput(io.Discard)
	if opts.logFile != "" {
		logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	adapter := dateadapter.NewTimeAdapter(time.Local)
	model, err := ui.NewModel(cfg, adapter)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("Starting picker in %s mode", cfg.Mode)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.ErrOrStderr()))
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), cfg, adapter, model.Result())
}

// writeResult prints the committed selection, one line per result. A range
// committed without an end date prints nothing and returns errIncomplete.
func writeResult(w io.Writer, cfg *config.Config, a *dateadapter.TimeAdapter, res ui.Result) error {
	if res.Cancelled || res.Start == nil {
		log.Printf("Picker cancelled")
		return errCancelled
	}
	start := a.Format(*res.Start, cfg.DateFormat)
	if cfg.Mode == config.ModeSingle {
		_, err := fmt.Fprintln(w, start)
		return err
	}
	if res.End == nil {
		log.Printf("Range committed without an end date")
		return errIncomplete
	}
	_, err := fmt.Fprintln(w, start, a.Format(*res.End, cfg.DateFormat))
	return err
}

// loadConfig loads the config file and applies flag overrides on top of the
// file and environment values.
func loadConfig(opts *options) (*config.Config, error) {
	configSvc := config.NewConfigService()
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return nil, err
	}

	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	if opts.start != "" {
		cfg.StartDate = opts.start
	}
	if opts.actions != "" {
		b, err := strconv.ParseBool(opts.actions)
		if err != nil {
			return nil, fmt.Errorf("invalid --actions value %q: %w", opts.actions, err)
		}
		cfg.UseActions = b
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
