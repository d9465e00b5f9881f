package simulation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/plantops/balancer/pkg/application/dto"
	"github.com/plantops/balancer/pkg/domain/entities"
)

// Service runs production plan simulations against a plant. It holds no
// state between runs; every Simulate call builds fresh accumulators.
type Service struct{}

// NewService creates a new simulation service.
func NewService() *Service {
	return &Service{}
}

// Simulate computes the day-by-day balance of the plant for the given
// production orders. Orders may arrive in any sequence; they are grouped by
// calendar day and each distinct day is processed exactly once in ascending
// order. The first invalid lookup or allocation aborts the whole run.
func (s *Service) Simulate(ctx context.Context, plant *entities.Plant, orders []*entities.ProductionOrder) (*dto.SimulationResult, error) {
	ordersByDay := make(map[time.Time][]*entities.ProductionOrder)
	for _, order := range orders {
		ordersByDay[order.Date] = append(ordersByDay[order.Date], order)
	}

	dates := make([]time.Time, 0, len(ordersByDay))
	for date := range ordersByDay {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	days := make([]*dto.DaySummary, 0, len(dates))
	for _, date := range dates {
		summary, err := s.simulateDay(plant, date, ordersByDay[date])
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", date.Format("2006-01-02"), err)
		}
		days = append(days, summary)
	}

	return &dto.SimulationResult{Plant: plant, Days: days}, nil
}

// simulateDay aggregates all orders of one calendar day into a DaySummary.
// All contributions are additive, so the order of processing does not affect
// the result.
func (s *Service) simulateDay(plant *entities.Plant, date time.Time, orders []*entities.ProductionOrder) (*dto.DaySummary, error) {
	productTotals := make(map[string]float64)
	usageByMachine := make(map[string]*dto.MachineUsage)
	resourceBalance := make(map[string]float64)

	for _, order := range orders {
		product, err := plant.Product(order.ProductID)
		if err != nil {
			return nil, err
		}
		productTotals[product.ID] += order.Quantity

		for i := range product.Steps {
			step := &product.Steps[i]
			allocations, err := ResolveStepMachines(step, order, plant)
			if err != nil {
				return nil, fmt.Errorf("product %s: %w", product.ID, err)
			}
			for _, allocation := range allocations {
				contribution := order.Quantity * allocation.Fraction

				usage, ok := usageByMachine[allocation.Machine.ID]
				if !ok {
					usage = dto.NewMachineUsage(allocation.Machine)
					usageByMachine[allocation.Machine.ID] = usage
				}

				usage.AddCapacity(scaleValues(step.CapacityUsage, contribution))

				resourceAdd := scaleValues(step.ResourceChanges, contribution)
				usage.AddResourceBalance(resourceAdd)
				for resourceID, value := range resourceAdd {
					if value == 0 {
						continue
					}
					resourceBalance[resourceID] += value
				}
			}
		}
	}

	// Freeze the accumulators: the summary gets copies so later callers
	// cannot mutate the committed result through shared maps.
	frozen := make(map[string]*dto.MachineUsage, len(usageByMachine))
	for machineID, usage := range usageByMachine {
		frozen[machineID] = usage.Clone()
	}

	return &dto.DaySummary{
		Date:              date,
		ProductQuantities: productTotals,
		MachineUsage:      frozen,
		ResourceBalance:   resourceBalance,
	}, nil
}

// scaleValues multiplies every entry of a per-unit map by a factor.
func scaleValues(values map[string]float64, factor float64) map[string]float64 {
	scaled := make(map[string]float64, len(values))
	for key, value := range values {
		scaled[key] = value * factor
	}
	return scaled
}
