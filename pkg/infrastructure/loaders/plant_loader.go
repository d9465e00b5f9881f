// Package loaders reads plant configurations and production plans from
// structured files (JSON or YAML, selected by extension) and builds the
// validated in-memory domain model.
package loaders

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/plantops/balancer/pkg/domain/entities"
)

// Loader handles loading plant and plan data from structured config files.
type Loader struct{}

// NewLoader creates a new file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// File schema, mapped with mapstructure tags so the same structs cover JSON
// and YAML inputs.
type plantFile struct {
	Resources     []resourceEntry `mapstructure:"resources"`
	MachineGroups []groupEntry    `mapstructure:"machine_groups"`
	Machines      []machineEntry  `mapstructure:"machines"`
	Products      []productEntry  `mapstructure:"products"`
}

type resourceEntry struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Unit string `mapstructure:"unit"`
}

type groupEntry struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type machineEntry struct {
	ID       string             `mapstructure:"id"`
	Name     string             `mapstructure:"name"`
	GroupID  string             `mapstructure:"group_id"`
	Capacity map[string]float64 `mapstructure:"capacity"`
}

type productEntry struct {
	ID    string      `mapstructure:"id"`
	Name  string      `mapstructure:"name"`
	Unit  string      `mapstructure:"unit"`
	Steps []stepEntry `mapstructure:"steps"`
}

type stepEntry struct {
	Name            string             `mapstructure:"name"`
	Target          string             `mapstructure:"target"`
	MachineID       string             `mapstructure:"machine_id"`
	GroupID         string             `mapstructure:"group_id"`
	RequiredGroup   string             `mapstructure:"required_group"`
	Allocation      map[string]float64 `mapstructure:"allocation"`
	CapacityUsage   map[string]float64 `mapstructure:"capacity_usage"`
	ResourceChanges map[string]float64 `mapstructure:"resource_changes"`
}

// LoadPlant loads the full plant configuration from a file. Entity names
// default to the id and units default to empty when omitted.
func (l *Loader) LoadPlant(path string) (*entities.Plant, error) {
	var file plantFile
	if err := readFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to load plant config %s: %w", path, err)
	}

	resources := make([]*entities.Resource, 0, len(file.Resources))
	for _, entry := range file.Resources {
		resource, err := entities.NewResource(entry.ID, defaultName(entry.Name, entry.ID), entry.Unit)
		if err != nil {
			return nil, fmt.Errorf("plant config %s: %w", path, err)
		}
		resources = append(resources, resource)
	}

	groups := make([]*entities.MachineGroup, 0, len(file.MachineGroups))
	for _, entry := range file.MachineGroups {
		group, err := entities.NewMachineGroup(entry.ID, defaultName(entry.Name, entry.ID))
		if err != nil {
			return nil, fmt.Errorf("plant config %s: %w", path, err)
		}
		groups = append(groups, group)
	}

	machines := make([]*entities.Machine, 0, len(file.Machines))
	for _, entry := range file.Machines {
		machine, err := entities.NewMachine(entry.ID, defaultName(entry.Name, entry.ID), entry.GroupID, entry.Capacity)
		if err != nil {
			return nil, fmt.Errorf("plant config %s: %w", path, err)
		}
		machines = append(machines, machine)
	}

	products := make([]*entities.Product, 0, len(file.Products))
	for _, entry := range file.Products {
		steps, err := buildRecipeSteps(entry.Steps)
		if err != nil {
			return nil, fmt.Errorf("plant config %s: product %q: %w", path, entry.ID, err)
		}
		product, err := entities.NewProduct(entry.ID, defaultName(entry.Name, entry.ID), entry.Unit, steps)
		if err != nil {
			return nil, fmt.Errorf("plant config %s: %w", path, err)
		}
		products = append(products, product)
	}

	plant, err := entities.NewPlant(resources, groups, machines, products)
	if err != nil {
		return nil, fmt.Errorf("plant config %s: %w", path, err)
	}
	return plant, nil
}

// buildRecipeSteps converts step entries, rejecting unrecognized targets at
// load time rather than letting them surface mid-simulation.
func buildRecipeSteps(entries []stepEntry) ([]entities.RecipeStep, error) {
	steps := make([]entities.RecipeStep, 0, len(entries))
	for _, entry := range entries {
		target := entities.StepTarget(entry.Target)
		if !target.Valid() {
			return nil, fmt.Errorf("unsupported target %q in recipe step %q", entry.Target, entry.Name)
		}
		steps = append(steps, entities.RecipeStep{
			Name:            entry.Name,
			Target:          target,
			MachineID:       entry.MachineID,
			GroupID:         entry.GroupID,
			RequiredGroup:   entry.RequiredGroup,
			Allocation:      entry.Allocation,
			CapacityUsage:   entry.CapacityUsage,
			ResourceChanges: entry.ResourceChanges,
		})
	}
	return steps, nil
}

// readFile parses a JSON or YAML file into the given schema struct.
func readFile(path string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func defaultName(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
