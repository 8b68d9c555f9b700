package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/input"
	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	case err != nil:
		log.Fatal(err)
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Handle Ctrl+C gracefully, between generations
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := os.Stdout

	if config.Survey {
		if err = runSurvey(ctx, out, config); err != nil {
			log.Fatal(err)
		}
		return
	}

	displayBanner(out, config)

	prompter := input.NewPrompter(os.Stdin, out, config.Bound())
	initial, err := initialGeneration(config, prompter)
	if err != nil {
		log.Fatalf("could not read the starting cells: %v", err)
	}

	renderer := model.NewTerminalRenderer(out, config.Extent)
	renderer.Display(initial)
	if err = prompter.ConfirmStart(); err != nil {
		log.Fatal(err)
	}

	sim := model.NewSimulation(config, initial)
	if _, err = runGame(ctx, out, config, sim, renderer, prompter); err != nil {
		fmt.Fprintln(out, "\nShutting down gracefully...")
		fmt.Fprintf(out, "Stopped after %d generations: %v\n", sim.StepIndex(), err)
	}
}
