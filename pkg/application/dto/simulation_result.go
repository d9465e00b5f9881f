package dto

import (
	"sort"
	"time"

	"github.com/plantops/balancer/pkg/domain/entities"
)

// MachineUsage aggregates one machine's activity during one day. The maps are
// sparse: zero-valued contributions are never stored.
type MachineUsage struct {
	Machine         *entities.Machine
	CapacityUsed    map[string]float64
	ResourceBalance map[string]float64
}

// NewMachineUsage creates an empty accumulator for a machine.
func NewMachineUsage(machine *entities.Machine) *MachineUsage {
	return &MachineUsage{
		Machine:         machine,
		CapacityUsed:    make(map[string]float64),
		ResourceBalance: make(map[string]float64),
	}
}

// AddCapacity accumulates capacity usage, skipping zero values.
func (u *MachineUsage) AddCapacity(values map[string]float64) {
	for key, value := range values {
		if value == 0 {
			continue
		}
		u.CapacityUsed[key] += value
	}
}

// AddResourceBalance accumulates resource deltas, skipping zero values.
func (u *MachineUsage) AddResourceBalance(values map[string]float64) {
	for key, value := range values {
		if value == 0 {
			continue
		}
		u.ResourceBalance[key] += value
	}
}

// Utilization returns used/limit for a capacity key. The second return is
// false when the machine declares no positive limit for that key.
func (u *MachineUsage) Utilization(capacityKey string) (float64, bool) {
	limit, ok := u.Machine.CapacityLimit(capacityKey)
	if !ok {
		return 0, false
	}
	return u.CapacityUsed[capacityKey] / limit, true
}

// Clone returns a copy with freshly copied maps, detaching the result from
// the accumulator it was built in.
func (u *MachineUsage) Clone() *MachineUsage {
	clone := NewMachineUsage(u.Machine)
	for key, value := range u.CapacityUsed {
		clone.CapacityUsed[key] = value
	}
	for key, value := range u.ResourceBalance {
		clone.ResourceBalance[key] = value
	}
	return clone
}

// CapacityAlert reports a machine exceeding a declared capacity limit on one
// metric during one day.
type CapacityAlert struct {
	MachineID   string
	MachineName string
	CapacityKey string
	Used        float64
	Limit       float64
}

// DaySummary is the complete simulated outcome for one calendar date.
type DaySummary struct {
	Date              time.Time
	ProductQuantities map[string]float64
	MachineUsage      map[string]*MachineUsage
	ResourceBalance   map[string]float64
}

// CapacityAlerts derives the overrun alerts for this day. Machines and keys
// without a declared positive limit never alert; usage exactly at the limit
// does not alert.
func (d *DaySummary) CapacityAlerts() []CapacityAlert {
	var alerts []CapacityAlert
	for _, usage := range d.MachineUsage {
		for key, used := range usage.CapacityUsed {
			limit, ok := usage.Machine.CapacityLimit(key)
			if ok && used > limit {
				alerts = append(alerts, CapacityAlert{
					MachineID:   usage.Machine.ID,
					MachineName: usage.Machine.Name,
					CapacityKey: key,
					Used:        used,
					Limit:       limit,
				})
			}
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].MachineID != alerts[j].MachineID {
			return alerts[i].MachineID < alerts[j].MachineID
		}
		return alerts[i].CapacityKey < alerts[j].CapacityKey
	})
	return alerts
}

// SimulationResult holds the outcome of a production plan simulation: one
// DaySummary per distinct order date, in ascending chronological order.
type SimulationResult struct {
	Plant *entities.Plant
	Days  []*DaySummary
}

// OverallResourceBalance sums each resource's daily net across all days.
func (r *SimulationResult) OverallResourceBalance() map[string]float64 {
	totals := make(map[string]float64)
	for _, day := range r.Days {
		for resourceID, value := range day.ResourceBalance {
			totals[resourceID] += value
		}
	}
	return totals
}

// OverallProductQuantities sums each product's daily total across all days.
func (r *SimulationResult) OverallProductQuantities() map[string]float64 {
	totals := make(map[string]float64)
	for _, day := range r.Days {
		for productID, quantity := range day.ProductQuantities {
			totals[productID] += quantity
		}
	}
	return totals
}
