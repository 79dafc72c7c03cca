package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"datedim/cmd"
	"datedim/config"
	"datedim/database"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// Check for migration subcommands
	if flag.Arg(0) == "migrate" {
		if err := handleMigrationCommand(*configPath, flag.Args()[1:]); err != nil {
			log.Fatal("Migration error:", err)
		}
		return
	}

	// Normal one-shot generation run
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, cancelling run...")
		cancel()
	}()

	if err := cmd.Run(ctx, *configPath); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleMigrationCommand(configPath string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: datedim migrate [up|down|status] [args...]")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	databaseURL := database.BuildURL(cfg)

	switch args[0] {
	case "up":
		return database.MigrateUp(databaseURL)
	case "down":
		steps := "1"
		if len(args) > 1 {
			steps = args[1]
		}
		return database.MigrateDown(databaseURL, steps)
	case "status":
		return database.MigrateStatus(databaseURL)
	default:
		return fmt.Errorf("unknown migration command: %s", args[0])
	}
}
