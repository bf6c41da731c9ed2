package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Command line flags; anything set here overrides the config file
	configPath := flag.String("config", "av30.yaml", "Config file path")
	feedURL := flag.String("feed", "", "Telemetry websocket URL (enables the feed)")
	demo := flag.Bool("demo", false, "Force demo flight mode")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	flag.Parse()

	log.Println("AV-30 Attitude Indicator")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if *feedURL != "" {
		cfg.Feed.Enabled = true
		cfg.Feed.URL = *feedURL
	}
	if *demo {
		cfg.Demo.Enabled = true
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	if cfg.Feed.Enabled {
		log.Printf("Telemetry feed: %s", cfg.Feed.URL)
	}

	app := NewApp(cfg)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		app.Shutdown()
		os.Exit(0)
	}()

	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
	app.Shutdown()
}
