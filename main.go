package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nestlist/internal/config"
	"nestlist/internal/eventbus"
	"nestlist/internal/logging"
	"nestlist/internal/ui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		noWrap     bool
		horizontal bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:     "nestlist",
		Short:   "Scrollable list widget with expandable sub-entries",
		Long:    "nestlist demonstrates a terminal list control whose entries can expand\ninto navigable children, with wrap-around selection and viewport scrolling.",
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(configPath, noWrap, horizontal, debug)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "clamp at the list boundaries instead of wrapping")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "scroll the planner horizontally")
	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")

	return cmd
}

func run(configPath string, noWrap, horizontal, debug bool) error {
	// Load configuration, falling back to defaults
	configSvc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
	}

	// Flags override config
	if noWrap {
		cfg.WrapAround = false
	}
	if horizontal {
		cfg.Axis = "horizontal"
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	logger, closeLog, err := logging.Setup(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New(logging.ComponentLogger(logger, "eventbus"))
	defer bus.Close()

	// Log navigation activity for troubleshooting
	unsubscribe := bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			logger.Debug().
				Int("main", event.Main).
				Int("child", event.Child).
				Bool("hasChild", event.HasChild).
				Bool("hasSelection", event.HasSelection).
				Msg("selection changed")
		}
	})
	defer unsubscribe()

	model := ui.NewModel(cfg, bus, logging.ComponentLogger(logger, "ui"))
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	logger.Info().Str("axis", cfg.Axis).Bool("wrap", cfg.WrapAround).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Msg("UI exited")

	return nil
}
