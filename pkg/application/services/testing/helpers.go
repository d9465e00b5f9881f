// Package testing provides shared plant fixtures for simulation tests.
package testing

import (
	"time"

	"github.com/plantops/balancer/pkg/domain/entities"
)

// mustResource is a helper for tests - panics on validation error
func mustResource(id, name, unit string) *entities.Resource {
	resource, err := entities.NewResource(id, name, unit)
	if err != nil {
		panic(err)
	}
	return resource
}

// mustGroup is a helper for tests - panics on validation error
func mustGroup(id, name string) *entities.MachineGroup {
	group, err := entities.NewMachineGroup(id, name)
	if err != nil {
		panic(err)
	}
	return group
}

// mustMachine is a helper for tests - panics on validation error
func mustMachine(id, name, groupID string, capacity map[string]float64) *entities.Machine {
	machine, err := entities.NewMachine(id, name, groupID, capacity)
	if err != nil {
		panic(err)
	}
	return machine
}

// mustProduct is a helper for tests - panics on validation error
func mustProduct(id, name, unit string, steps ...entities.RecipeStep) *entities.Product {
	product, err := entities.NewProduct(id, name, unit, steps)
	if err != nil {
		panic(err)
	}
	return product
}

// MustDate parses an ISO date - panics on error
func MustDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date
}

// MustOrder creates a production order - panics on validation error
func MustOrder(date, productID, machineID string, quantity float64) *entities.ProductionOrder {
	order, err := entities.NewProductionOrder(MustDate(date), productID, machineID, quantity)
	if err != nil {
		panic(err)
	}
	return order
}

// BuildSingleDigesterPlant creates the smallest useful plant: one digester
// group with one machine and a pulp product digested on it.
func BuildSingleDigesterPlant() *entities.Plant {
	plant, err := entities.NewPlant(
		[]*entities.Resource{mustResource("steam", "Steam", "t")},
		[]*entities.MachineGroup{mustGroup("dig", "Digesters")},
		[]*entities.Machine{mustMachine("D1", "Digester 1", "dig", map[string]float64{"ton": 120})},
		[]*entities.Product{mustProduct("pulp", "Pulp", "t", entities.RecipeStep{
			Name:            "digest",
			Target:          entities.TargetGroup,
			GroupID:         "dig",
			CapacityUsage:   map[string]float64{"ton": 1.0},
			ResourceChanges: map[string]float64{"steam": -0.3},
		})},
	)
	if err != nil {
		panic(err)
	}
	return plant
}

// BuildPulpMillPlant creates a plant with a three-digester group and a
// paper machine group, covering even splits, capacity limits and
// order-machine recipe steps.
func BuildPulpMillPlant() *entities.Plant {
	plant, err := entities.NewPlant(
		[]*entities.Resource{
			mustResource("steam", "Steam", "t"),
			mustResource("fiber", "Fiber", "t"),
		},
		[]*entities.MachineGroup{
			mustGroup("dig", "Digesters"),
			mustGroup("paper", "Paper machines"),
		},
		[]*entities.Machine{
			mustMachine("D1", "Digester 1", "dig", map[string]float64{"ton": 120}),
			mustMachine("D2", "Digester 2", "dig", map[string]float64{"ton": 80}),
			mustMachine("D3", "Digester 3", "dig", map[string]float64{"ton": 100}),
			mustMachine("MP1", "Paper machine 1", "paper", map[string]float64{"paper_output": 300}),
		},
		[]*entities.Product{
			mustProduct("pulp", "Pulp", "t", entities.RecipeStep{
				Name:            "digest",
				Target:          entities.TargetGroup,
				GroupID:         "dig",
				CapacityUsage:   map[string]float64{"ton": 1.0},
				ResourceChanges: map[string]float64{"steam": -0.25, "fiber": -1.5},
			}),
			mustProduct("paper", "Paper", "t", entities.RecipeStep{
				Name:            "press",
				Target:          entities.TargetOrderMachine,
				RequiredGroup:   "paper",
				CapacityUsage:   map[string]float64{"paper_output": 1.0},
				ResourceChanges: map[string]float64{"steam": -0.5},
			}),
		},
	)
	if err != nil {
		panic(err)
	}
	return plant
}
