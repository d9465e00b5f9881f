package entities

import "fmt"

// StepTarget selects how a recipe step is assigned to machines.
type StepTarget string

const (
	// TargetGroup spreads the step across the machines of a named group,
	// optionally weighted by the step's Allocation map.
	TargetGroup StepTarget = "group"
	// TargetMachine pins the step to one machine named on the step.
	TargetMachine StepTarget = "machine"
	// TargetOrderMachine runs the step on the machine named by the
	// triggering production order.
	TargetOrderMachine StepTarget = "order_machine"
)

// Valid reports whether t is one of the recognized target variants.
func (t StepTarget) Valid() bool {
	switch t {
	case TargetGroup, TargetMachine, TargetOrderMachine:
		return true
	}
	return false
}

// RecipeStep is one stage of manufacturing a product. CapacityUsage and
// ResourceChanges are expressed per unit of ordered quantity; resource
// deltas are negative for consumption and positive for production.
type RecipeStep struct {
	Name            string
	Target          StepTarget
	MachineID       string             // required when Target is TargetMachine
	GroupID         string             // required when Target is TargetGroup
	RequiredGroup   string             // optional constraint for TargetOrderMachine
	Allocation      map[string]float64 // optional explicit weights for TargetGroup
	CapacityUsage   map[string]float64
	ResourceChanges map[string]float64
}

// Product is something the plant manufactures via an ordered recipe.
type Product struct {
	ID    string
	Name  string
	Unit  string
	Steps []RecipeStep
}

// NewProduct creates a validated Product.
func NewProduct(id, name, unit string, steps []RecipeStep) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	return &Product{ID: id, Name: name, Unit: unit, Steps: steps}, nil
}
