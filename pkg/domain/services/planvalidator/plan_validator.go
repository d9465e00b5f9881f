package planvalidator

import (
	"fmt"

	"github.com/plantops/balancer/pkg/domain/entities"
)

// PlanValidator checks a production plan against a plant configuration
// before simulation runs.
type PlanValidator struct{}

// NewPlanValidator creates a new plan validator.
func NewPlanValidator() *PlanValidator {
	return &PlanValidator{}
}

// ValidationResult contains the results of plan validation.
type ValidationResult struct {
	UnknownProducts []string
	UnknownMachines []string
	Errors          []string
}

// Valid reports whether the plan passed every check.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidatePlan verifies that every order references a product and a machine
// that exist in the plant. All violations are collected so the caller can
// report them together rather than stopping at the first.
func (v *PlanValidator) ValidatePlan(plan *entities.ProductionPlan, plant *entities.Plant) *ValidationResult {
	result := &ValidationResult{
		UnknownProducts: make([]string, 0),
		UnknownMachines: make([]string, 0),
		Errors:          make([]string, 0),
	}

	seenProducts := make(map[string]bool)
	seenMachines := make(map[string]bool)

	for _, order := range plan.Orders {
		if _, ok := plant.LookupProduct(order.ProductID); !ok && !seenProducts[order.ProductID] {
			seenProducts[order.ProductID] = true
			result.UnknownProducts = append(result.UnknownProducts, order.ProductID)
			result.Errors = append(result.Errors, fmt.Sprintf("unknown product: %s", order.ProductID))
		}
		if _, ok := plant.LookupMachine(order.MachineID); !ok && !seenMachines[order.MachineID] {
			seenMachines[order.MachineID] = true
			result.UnknownMachines = append(result.UnknownMachines, order.MachineID)
			result.Errors = append(result.Errors, fmt.Sprintf("unknown machine: %s", order.MachineID))
		}
	}

	return result
}
