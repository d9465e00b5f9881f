// Package analytics expands daily simulation totals into fixed-slot time
// series suitable for charting. It is a pure consumer of simulation results.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/plantops/balancer/pkg/application/dto"
)

// Series categories.
const (
	ResourceCategory        = "resource_balance"
	MachineCapacityCategory = "machine_capacity"
	ProductCategory         = "product_output"
)

// DefaultSlotsPerDay is the standard hourly resolution for one day.
const DefaultSlotsPerDay = 24

// HourlyPoint is one value at a specific timestamp.
type HourlyPoint struct {
	Timestamp time.Time
	Value     float64
}

// HourlySeries is a daily quantity expanded to evenly spread sub-day slots.
// Unit is empty when the quantity has no display unit.
type HourlySeries struct {
	ID       string
	Label    string
	Category string
	Unit     string
	Points   []HourlyPoint
}

// Total sums all point values of the series.
func (s *HourlySeries) Total() float64 {
	total := 0.0
	for _, point := range s.Points {
		total += point.Value
	}
	return total
}

// seriesSpec describes one series to expand: its identity and how to read
// its daily value out of a DaySummary.
type seriesSpec struct {
	id      string
	label   string
	unit    string
	extract func(*dto.DaySummary) float64
}

// hourlyPoints splits one day's total evenly across slotsPerDay slots
// starting at the day's midnight.
func hourlyPoints(day *dto.DaySummary, total float64, slotsPerDay int) ([]HourlyPoint, error) {
	if slotsPerDay <= 0 {
		return nil, fmt.Errorf("slots per day must be positive, got %d", slotsPerDay)
	}
	portion := total / float64(slotsPerDay)
	points := make([]HourlyPoint, slotsPerDay)
	for slot := 0; slot < slotsPerDay; slot++ {
		points[slot] = HourlyPoint{
			Timestamp: day.Date.Add(time.Duration(slot) * time.Hour),
			Value:     portion,
		}
	}
	return points, nil
}

// expandDaily builds one series per spec across all days in date order.
// Series whose values never leave zero (within 1e-9) are omitted.
func expandDaily(days []*dto.DaySummary, specs []seriesSpec, category string, slotsPerDay int) ([]HourlySeries, error) {
	sortedDays := make([]*dto.DaySummary, len(days))
	copy(sortedDays, days)
	sort.Slice(sortedDays, func(i, j int) bool { return sortedDays[i].Date.Before(sortedDays[j].Date) })

	var series []HourlySeries
	for _, spec := range specs {
		points := make([]HourlyPoint, 0, len(sortedDays)*slotsPerDay)
		hasData := false
		for _, day := range sortedDays {
			value := spec.extract(day)
			if !hasData && math.Abs(value) > 1e-9 {
				hasData = true
			}
			dayPoints, err := hourlyPoints(day, value, slotsPerDay)
			if err != nil {
				return nil, err
			}
			points = append(points, dayPoints...)
		}
		if !hasData {
			continue
		}
		series = append(series, HourlySeries{
			ID:       spec.id,
			Label:    spec.label,
			Category: category,
			Unit:     spec.unit,
			Points:   points,
		})
	}
	return series, nil
}

// HourlyResourceSeries expands each resource's daily net balance.
func HourlyResourceSeries(result *dto.SimulationResult, slotsPerDay int) ([]HourlySeries, error) {
	idSet := make(map[string]bool)
	for _, resource := range result.Plant.Resources() {
		idSet[resource.ID] = true
	}
	for _, day := range result.Days {
		for resourceID := range day.ResourceBalance {
			idSet[resourceID] = true
		}
	}

	specs := make([]seriesSpec, 0, len(idSet))
	for _, resourceID := range sortedKeys(idSet) {
		id := resourceID
		label, unit := id, ""
		if resource, ok := result.Plant.LookupResource(id); ok {
			label = resource.Name
			unit = resource.Unit
		}
		specs = append(specs, seriesSpec{
			id:    id,
			label: label,
			unit:  unit,
			extract: func(day *dto.DaySummary) float64 {
				return day.ResourceBalance[id]
			},
		})
	}
	return expandDaily(result.Days, specs, ResourceCategory, slotsPerDay)
}

// HourlyProductSeries expands each product's daily output quantity.
func HourlyProductSeries(result *dto.SimulationResult, slotsPerDay int) ([]HourlySeries, error) {
	idSet := make(map[string]bool)
	for _, product := range result.Plant.Products() {
		idSet[product.ID] = true
	}
	for _, day := range result.Days {
		for productID := range day.ProductQuantities {
			idSet[productID] = true
		}
	}

	specs := make([]seriesSpec, 0, len(idSet))
	for _, productID := range sortedKeys(idSet) {
		id := productID
		label, unit := id, ""
		if product, ok := result.Plant.LookupProduct(id); ok {
			label = product.Name
			unit = product.Unit
		}
		specs = append(specs, seriesSpec{
			id:    id,
			label: label,
			unit:  unit,
			extract: func(day *dto.DaySummary) float64 {
				return day.ProductQuantities[id]
			},
		})
	}
	return expandDaily(result.Days, specs, ProductCategory, slotsPerDay)
}

// HourlyMachineCapacitySeries expands capacity usage per (machine, metric)
// pair observed anywhere in the result. Series ids take the form
// "machineID::capacityKey".
func HourlyMachineCapacitySeries(result *dto.SimulationResult, slotsPerDay int) ([]HourlySeries, error) {
	type capacityKey struct {
		machineID string
		metric    string
	}
	keySet := make(map[capacityKey]bool)
	for _, day := range result.Days {
		for machineID, usage := range day.MachineUsage {
			for metric := range usage.CapacityUsed {
				keySet[capacityKey{machineID: machineID, metric: metric}] = true
			}
		}
	}

	keys := make([]capacityKey, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].machineID != keys[j].machineID {
			return keys[i].machineID < keys[j].machineID
		}
		return keys[i].metric < keys[j].metric
	})

	specs := make([]seriesSpec, 0, len(keys))
	for _, key := range keys {
		key := key
		machineName := key.machineID
		if machine, ok := result.Plant.LookupMachine(key.machineID); ok {
			machineName = machine.Name
		}
		specs = append(specs, seriesSpec{
			id:    fmt.Sprintf("%s::%s", key.machineID, key.metric),
			label: fmt.Sprintf("%s - %s", machineName, key.metric),
			extract: func(day *dto.DaySummary) float64 {
				usage, ok := day.MachineUsage[key.machineID]
				if !ok {
					return 0
				}
				return usage.CapacityUsed[key.metric]
			},
		})
	}
	return expandDaily(result.Days, specs, MachineCapacityCategory, slotsPerDay)
}

// BuildHourlySeries combines resource, product and machine capacity series.
func BuildHourlySeries(result *dto.SimulationResult, slotsPerDay int) ([]HourlySeries, error) {
	var series []HourlySeries
	resourceSeries, err := HourlyResourceSeries(result, slotsPerDay)
	if err != nil {
		return nil, err
	}
	series = append(series, resourceSeries...)

	productSeries, err := HourlyProductSeries(result, slotsPerDay)
	if err != nil {
		return nil, err
	}
	series = append(series, productSeries...)

	capacitySeries, err := HourlyMachineCapacitySeries(result, slotsPerDay)
	if err != nil {
		return nil, err
	}
	return append(series, capacitySeries...), nil
}

// sortedKeys returns the keys of a string set in ascending order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
