package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/plantops/balancer/pkg/application/services/simulation"
	"github.com/plantops/balancer/pkg/domain/entities"
	"github.com/plantops/balancer/pkg/domain/services/planvalidator"
	"github.com/plantops/balancer/pkg/infrastructure/loaders"
	"github.com/plantops/balancer/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command.
type Config struct {
	ConfigFile  string
	PlanFile    string
	StartDate   string // inclusive ISO date filter, empty = open
	EndDate     string // inclusive ISO date filter, empty = open
	OutputPath  string
	Format      string
	Decimals    int
	SlotsPerDay int
	Verbose     bool
	Help        bool
}

// SimulateCommand loads a plant and a production plan, validates the plan,
// runs the simulation and renders the result.
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration.
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command.
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.ConfigFile == "" || c.config.PlanFile == "" {
		return fmt.Errorf("both -config and -plan files must be specified")
	}

	loader := loaders.NewLoader()

	if c.config.Verbose {
		fmt.Printf("Loading plant configuration from %s\n", c.config.ConfigFile)
	}
	plant, err := loader.LoadPlant(c.config.ConfigFile)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("Loading production plan from %s\n", c.config.PlanFile)
	}
	plan, err := loader.LoadPlan(c.config.PlanFile)
	if err != nil {
		return err
	}

	plan, err = c.filterPlan(plan)
	if err != nil {
		return err
	}

	validation := planvalidator.NewPlanValidator().ValidatePlan(plan, plant)
	if !validation.Valid() {
		return fmt.Errorf("production plan validation failed:\n%s", strings.Join(validation.Errors, "\n"))
	}

	if c.config.Verbose {
		fmt.Printf("Simulating %d orders\n", len(plan.Orders))
	}

	startTime := time.Now()
	result, err := simulation.NewService().Simulate(ctx, plant, plan.Orders)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if c.config.Verbose {
		fmt.Printf("Simulated %d days in %v\n\n", len(result.Days), time.Since(startTime))
	}

	return output.Generate(result, output.Config{
		Format:      c.config.Format,
		OutputPath:  c.config.OutputPath,
		Decimals:    int32(c.config.Decimals),
		SlotsPerDay: c.config.SlotsPerDay,
		Verbose:     c.config.Verbose,
	})
}

// filterPlan applies the optional inclusive date-range filter.
func (c *SimulateCommand) filterPlan(plan *entities.ProductionPlan) (*entities.ProductionPlan, error) {
	var start, end *time.Time
	if c.config.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", c.config.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", c.config.StartDate)
		}
		start = &parsed
	}
	if c.config.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", c.config.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q", c.config.EndDate)
		}
		end = &parsed
	}
	if start == nil && end == nil {
		return plan, nil
	}
	return plan.FilterByDateRange(start, end), nil
}

// showHelp displays the help message.
func (c *SimulateCommand) showHelp() {
	fmt.Print(`Plant Balancer - production plan simulation

USAGE:
    balancer -config <file> -plan <file> [options]

OPTIONS:
    -config <file>      Plant configuration file (JSON or YAML)
    -plan <file>        Production plan file (JSON or YAML)
    -start-date <date>  Keep only orders on or after this ISO date
    -end-date <date>    Keep only orders on or before this ISO date
    -format <fmt>       Output format: text, json, csv (default: text)
    -output <file>      Also write the output to this file
    -decimals <n>       Decimal places in text output (default: 2)
    -slots <n>          Sub-day slots for csv time series (default: 24)
    -verbose            Enable verbose output
    -help               Show this help message

The csv format emits the hourly-expanded time series (resource balances,
product output and machine capacity usage) for charting.

EXAMPLES:
    balancer -config plant.json -plan plan.json
    balancer -config plant.yaml -plan plan.yaml -format json -output result.json
    balancer -config plant.json -plan plan.json -start-date 2024-01-01 -end-date 2024-01-07
`)
}
