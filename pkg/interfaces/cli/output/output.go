// Package output renders simulation results for the CLI in text, JSON and
// CSV (hourly time series) formats. It only reads the result, never the
// simulation state.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/plantops/balancer/pkg/application/dto"
	"github.com/plantops/balancer/pkg/application/services/analytics"
)

// Config holds configuration for output generation.
type Config struct {
	Format      string // text, json or csv
	OutputPath  string // optional file to write in addition to stdout
	Decimals    int32
	SlotsPerDay int
	Verbose     bool
}

// Generate creates output in the configured format.
func Generate(result *dto.SimulationResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(result *dto.SimulationResult, config Config) error {
	report := FormatReport(result, config.Decimals)
	fmt.Println(report)
	return writeFile(config, []byte(report+"\n"))
}

// JSON view structs: the domain aggregate keeps its indexes private, so the
// result is projected into plain serializable shapes.
type jsonResult struct {
	Days                    []jsonDay          `json:"days"`
	OverallProductQuantity  map[string]float64 `json:"overall_product_quantities"`
	OverallResourceBalance  map[string]float64 `json:"overall_resource_balance"`
	TotalCapacityAlertCount int                `json:"total_capacity_alerts"`
}

type jsonDay struct {
	Date              string                      `json:"date"`
	ProductQuantities map[string]float64          `json:"product_quantities"`
	MachineUsage      map[string]jsonMachineUsage `json:"machine_usage"`
	ResourceBalance   map[string]float64          `json:"resource_balance"`
	CapacityAlerts    []jsonAlert                 `json:"capacity_alerts"`
}

type jsonMachineUsage struct {
	MachineName     string             `json:"machine_name"`
	GroupID         string             `json:"group_id"`
	CapacityUsed    map[string]float64 `json:"capacity_used"`
	ResourceBalance map[string]float64 `json:"resource_balance"`
}

type jsonAlert struct {
	MachineID   string  `json:"machine_id"`
	MachineName string  `json:"machine_name"`
	CapacityKey string  `json:"capacity_key"`
	Used        float64 `json:"used"`
	Limit       float64 `json:"limit"`
}

func generateJSONOutput(result *dto.SimulationResult, config Config) error {
	view := jsonResult{
		Days:                   make([]jsonDay, 0, len(result.Days)),
		OverallProductQuantity: result.OverallProductQuantities(),
		OverallResourceBalance: result.OverallResourceBalance(),
	}
	for _, day := range result.Days {
		usage := make(map[string]jsonMachineUsage, len(day.MachineUsage))
		for machineID, machineUsage := range day.MachineUsage {
			usage[machineID] = jsonMachineUsage{
				MachineName:     machineUsage.Machine.Name,
				GroupID:         machineUsage.Machine.GroupID,
				CapacityUsed:    machineUsage.CapacityUsed,
				ResourceBalance: machineUsage.ResourceBalance,
			}
		}

		alerts := day.CapacityAlerts()
		jsonAlerts := make([]jsonAlert, 0, len(alerts))
		for _, alert := range alerts {
			jsonAlerts = append(jsonAlerts, jsonAlert(alert))
		}
		view.TotalCapacityAlertCount += len(jsonAlerts)

		view.Days = append(view.Days, jsonDay{
			Date:              day.Date.Format("2006-01-02"),
			ProductQuantities: day.ProductQuantities,
			MachineUsage:      usage,
			ResourceBalance:   day.ResourceBalance,
			CapacityAlerts:    jsonAlerts,
		})
	}

	jsonData, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return writeFile(config, append(jsonData, '\n'))
}

// generateCSVOutput writes the hourly-expanded time series produced by the
// analytics service, one row per (series, timestamp).
func generateCSVOutput(result *dto.SimulationResult, config Config) error {
	slots := config.SlotsPerDay
	if slots == 0 {
		slots = analytics.DefaultSlotsPerDay
	}
	series, err := analytics.BuildHourlySeries(result, slots)
	if err != nil {
		return fmt.Errorf("failed to build hourly series: %w", err)
	}

	records := [][]string{{"series_id", "label", "category", "unit", "timestamp", "value"}}
	for _, s := range series {
		for _, point := range s.Points {
			records = append(records, []string{
				s.ID,
				s.Label,
				s.Category,
				s.Unit,
				point.Timestamp.Format(time.RFC3339),
				strconv.FormatFloat(point.Value, 'f', -1, 64),
			})
		}
	}

	writer := csv.NewWriter(os.Stdout)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if config.OutputPath != "" {
		file, err := os.Create(config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		fileWriter := csv.NewWriter(file)
		if err := fileWriter.WriteAll(records); err != nil {
			return fmt.Errorf("failed to write CSV file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Results saved to: %s\n", config.OutputPath)
		}
	}
	return nil
}

func writeFile(config Config, data []byte) error {
	if config.OutputPath == "" {
		return nil
	}
	if err := os.WriteFile(config.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Results saved to: %s\n", config.OutputPath)
	}
	return nil
}
