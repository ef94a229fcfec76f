package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/config"
	"jobs4u/internal/eventbus"
	"jobs4u/internal/jobsearch"
	"jobs4u/internal/ui"
)

func main() {
	var configPath, endpoint string
	var writeConfig bool
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&configPath, "c", config.DefaultPath(), "Path to the config file (shorthand)")
	flag.StringVar(&endpoint, "endpoint", "", "Job search endpoint, overrides config and environment")
	flag.StringVar(&endpoint, "e", "", "Job search endpoint (shorthand)")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config file and exit")
	flag.Parse()

	// The terminal belongs to the UI; nothing is logged until the log file is open
	log.SetOutput(io.Discard)

	// Load configuration: file, then .env and environment, then flags
	configSvc := config.NewConfigService(configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(cfg, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	// Set up logging before the bus so its own log lines land in the file
	closeLog := openLog(cfg.LogFile)
	defer closeLog()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s, endpoint %s", configSvc.Path(), event.Endpoint)
		}
	})
	bus.Publish(eventbus.ConfigLoadedEvent{Endpoint: cfg.Endpoint})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize services
	client := jobsearch.NewClient(cfg.Endpoint, cfg.RequestTimeout())
	_ = jobsearch.NewService(ctx, bus, client, cfg.RequestTimeout()) // subscribes to search requests

	bus.Subscribe(eventbus.EventJobApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.JobAppliedEvent); ok {
			log.Printf("Applied to %q at %s (%s)", event.Job.Title, event.Job.Company, event.Job.URL)
		}
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
	} {
		bus.Subscribe(t, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI against %s", cfg.Endpoint)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	cancel()
}

// openLog points the standard logger at path. Logging is discarded when
// the file cannot be opened.
func openLog(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
}
