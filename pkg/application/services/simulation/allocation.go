package simulation

import (
	"fmt"

	"github.com/plantops/balancer/pkg/domain/entities"
)

// MachineAllocation pairs a machine with the fraction of an order's quantity
// attributed to it. Fractions returned for one step sum to 1.0.
type MachineAllocation struct {
	Machine  *entities.Machine
	Fraction float64
}

// ResolveStepMachines determines which machines execute a recipe step for a
// given order and what share of the order quantity each receives. It is
// stateless and invoked once per (order, step) pair.
func ResolveStepMachines(step *entities.RecipeStep, order *entities.ProductionOrder, plant *entities.Plant) ([]MachineAllocation, error) {
	switch step.Target {
	case entities.TargetOrderMachine:
		machine, err := plant.Machine(order.MachineID)
		if err != nil {
			return nil, err
		}
		if step.RequiredGroup != "" && machine.GroupID != step.RequiredGroup {
			return nil, fmt.Errorf("order for %s uses machine %q outside required group %q: %w",
				order.ProductID, machine.ID, step.RequiredGroup, ErrGroupMismatch)
		}
		return []MachineAllocation{{Machine: machine, Fraction: 1.0}}, nil

	case entities.TargetMachine:
		if step.MachineID == "" {
			return nil, fmt.Errorf("step %q requires machine_id: %w", step.Name, ErrMissingField)
		}
		machine, err := plant.Machine(step.MachineID)
		if err != nil {
			return nil, err
		}
		return []MachineAllocation{{Machine: machine, Fraction: 1.0}}, nil

	case entities.TargetGroup:
		if step.GroupID == "" {
			return nil, fmt.Errorf("step %q requires group_id: %w", step.Name, ErrMissingField)
		}
		machines, err := plant.MachinesInGroup(step.GroupID)
		if err != nil {
			return nil, err
		}
		shares, err := normalizeAllocation(machines, step.Allocation)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		var resolved []MachineAllocation
		for _, machine := range machines {
			if share := shares[machine.ID]; share != 0 {
				resolved = append(resolved, MachineAllocation{Machine: machine, Fraction: share})
			}
		}
		return resolved, nil

	default:
		return nil, fmt.Errorf("step %q has target %q: %w", step.Name, step.Target, ErrUnknownTarget)
	}
}

// normalizeAllocation computes each machine's fractional share of a group
// step so the shares total 1.0. With no explicit allocation every machine
// gets an even 1/N split. With an explicit allocation only weights naming
// machines actually in the group count; if all matched weights are zero the
// split falls back to even shares across the matched machines only.
func normalizeAllocation(machines []*entities.Machine, allocation map[string]float64) (map[string]float64, error) {
	if len(machines) == 0 {
		return nil, fmt.Errorf("cannot allocate recipe step without available machines")
	}
	if len(allocation) == 0 {
		share := 1.0 / float64(len(machines))
		shares := make(map[string]float64, len(machines))
		for _, machine := range machines {
			shares[machine.ID] = share
		}
		return shares, nil
	}

	matched := make(map[string]float64)
	total := 0.0
	for _, machine := range machines {
		weight, ok := allocation[machine.ID]
		if !ok {
			continue
		}
		if weight < 0 {
			return nil, fmt.Errorf("machine %q has weight %g: %w", machine.ID, weight, ErrNegativeAllocation)
		}
		matched[machine.ID] = weight
		total += weight
	}
	if len(matched) == 0 {
		return nil, ErrNoMatchingAllocation
	}
	if total == 0 {
		share := 1.0 / float64(len(matched))
		for machineID := range matched {
			matched[machineID] = share
		}
		return matched, nil
	}
	for machineID, weight := range matched {
		matched[machineID] = weight / total
	}
	return matched, nil
}
