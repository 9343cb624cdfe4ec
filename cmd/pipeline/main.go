package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"poolscout/internal/domain/entity"
	"poolscout/internal/errors"
)

// Supported subcommands:
// - listings:  collect, clean, correct and load listings
// - osm:       extract pools inside a polygon into the stage store
// - stage:     promote staged pools and addresses to the master store
// - reconcile: match new and removed pool listings to master properties
// - classify:  print the pool verdict for descriptions
// - parse:     print the parsed form and problems of addresses

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case string(entity.PipelineListings), string(entity.PipelineStage), string(entity.PipelineReconcile):
		return handleRun(ctx, entity.Pipeline(name), args)
	case string(entity.PipelineOSM):
		return handleOSM(ctx, args)
	case "classify":
		return handleClassify(args)
	case "parse":
		return handleParse(args)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func handleRun(ctx context.Context, pipeline entity.Pipeline, args []string) error {
	cmd := flag.NewFlagSet(string(pipeline), flag.ExitOnError)
	runID := cmd.String("run-id", "", "Run id (generated when empty)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", pipeline)
	}

	return runPipeline(ctx, pipeline, *runID, "")
}

func handleOSM(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("osm", flag.ExitOnError)
	runID := cmd.String("run-id", "", "Run id (generated when empty)")
	polygon := cmd.String("polygon", "", "Search polygon as GeoJSON or WKT")
	polygonFile := cmd.String("polygon-file", "", "File holding the search polygon")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse osm flags")
	}

	area := *polygon
	if *polygonFile != "" {
		data, err := os.ReadFile(*polygonFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", *polygonFile)
		}
		area = string(data)
	}
	if area == "" {
		return errors.New("--polygon or --polygon-file is required for osm command")
	}

	return runPipeline(ctx, entity.PipelineOSM, *runID, area)
}

func handleClassify(args []string) error {
	cmd := flag.NewFlagSet("classify", flag.ExitOnError)
	window := cmd.Int("window", 0, "Words inspected around each pool mention (default from config)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse classify flags")
	}

	return runClassify(os.Stdin, os.Stdout, *window, cmd.Args())
}

func handleParse(args []string) error {
	cmd := flag.NewFlagSet("parse", flag.ExitOnError)
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse parse flags")
	}

	return runParse(os.Stdin, os.Stdout, cmd.Args())
}

func printUsage() {
	fmt.Println("Usage: pipeline <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  listings    Collect listings, correct addresses and load the listing store")
	fmt.Println("  osm         Extract open-data pools inside --polygon into the stage store")
	fmt.Println("  stage       Promote staged pools and addresses to the master store")
	fmt.Println("  reconcile   Reconcile new and removed pool listings with master properties")
	fmt.Println("  classify    Print the pool verdict for descriptions (arguments or stdin lines)")
	fmt.Println("  parse       Parse and validate addresses (arguments or stdin lines)")
	fmt.Println("")
	fmt.Println("Use 'pipeline <command> -h' for more information about a command.")
}
