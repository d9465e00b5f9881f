package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/plantops/balancer/pkg/interfaces/cli/commands"
)

func main() {
	// Optional .env so file paths and defaults can come from the environment.
	_ = godotenv.Load()

	var (
		configFile = flag.String("config", os.Getenv("BALANCER_CONFIG"), "Plant configuration file (JSON or YAML)")
		planFile   = flag.String("plan", os.Getenv("BALANCER_PLAN"), "Production plan file (JSON or YAML)")
		startDate  = flag.String("start-date", "", "Keep only orders on or after this ISO date (YYYY-MM-DD)")
		endDate    = flag.String("end-date", "", "Keep only orders on or before this ISO date (YYYY-MM-DD)")
		format     = flag.String("format", "text", "Output format: text, json, csv")
		outputPath = flag.String("output", "", "Also write the output to this file")
		decimals   = flag.Int("decimals", 2, "Decimal places shown in text output")
		slots      = flag.Int("slots", 24, "Sub-day slots for csv time series")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ConfigFile:  *configFile,
		PlanFile:    *planFile,
		StartDate:   *startDate,
		EndDate:     *endDate,
		OutputPath:  *outputPath,
		Format:      *format,
		Decimals:    *decimals,
		SlotsPerDay: *slots,
		Verbose:     *verbose,
		Help:        *help,
	}

	cmd := commands.NewSimulateCommand(config)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
