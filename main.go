package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"cityscout/internal/catalog"
	"cityscout/internal/config"
	"cityscout/internal/eventbus"
	"cityscout/internal/session"
	"cityscout/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		dataPath   string
		debug      bool
		resume     bool
		noMouse    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&dataPath, "data", "", "Dataset file or directory of *.toml datasets")
	flag.BoolVar(&debug, "debug", false, "Log at debug level")
	flag.BoolVar(&resume, "resume", false, "Reopen the last search")
	flag.BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	flag.Parse()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, configErr := loadOrCreateConfig(config.NewConfigService(configPath))

	// Set up logging before anything derives a logger
	logFile, err := setupLogging(cfg, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	if configErr != nil {
		log.Warn("using default config", "path", configSvc.Path(), "error", configErr)
	}

	// Forward events to the UI once the program exists
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "event", e.Type())
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventDatasetLoaded,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}

	// Persist the last search
	recorder := session.NewRecorder(bus, cfg.Session.LastQuery)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			saved := *cfg
			saved.Session.LastQuery = event.LastQuery
			if err := configSvc.Save(&saved); err != nil {
				log.Error("failed to save config", "error", err)
				bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
			}
		}
	})

	// Load the dataset
	if dataPath == "" {
		dataPath = cfg.Data.Path
	}
	dataset, err := catalog.NewLoader(bus).Load(ctx, dataPath)
	if err != nil {
		log.Error("failed to load dataset", "path", dataPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	opts := ui.Options{
		Directory: dataset.Directory(),
		Events:    dataset.EventStore(),
	}
	if resume {
		opts.Resume = recorder.LastQuery()
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx), tea.WithReportFocus()}
	if !noMouse && !cfg.UI.DisableMouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Info("starting UI", "cities", dataset.Directory().Len(), "events", dataset.EventStore().Len())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally", "searches", recorder.Searches())

	// Cleanup
	close(eventChan)
}

// loadOrCreateConfig loads the config file, writing the defaults when none
// exists yet. On error the defaults are returned together with the error.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		return config.DefaultConfig(), err
	}

	if os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			return cfg, fmt.Errorf("create config: %w", err)
		}
	}
	return cfg, nil
}

// setupLogging points the default logger at the configured log file
func setupLogging(cfg *config.Config, debug bool) (*os.File, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// the terminal belongs to the UI
		log.SetOutput(io.Discard)
		return nil, err
	}

	log.SetDefault(log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}))
	return logFile, nil
}
