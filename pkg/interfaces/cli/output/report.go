package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plantops/balancer/pkg/application/dto"
)

// FormatReport renders a simulation result as a human-readable text report:
// one section per day (planned production, machine utilization, resource
// balance, capacity alerts) followed by consolidated horizon totals and a
// peak-utilization ranking.
func FormatReport(result *dto.SimulationResult, decimals int32) string {
	if len(result.Days) == 0 {
		return "No production orders available."
	}

	var lines []string
	for _, day := range result.Days {
		lines = append(lines, fmt.Sprintf("Day %s", day.Date.Format("2006-01-02")))

		if len(day.ProductQuantities) > 0 {
			lines = append(lines, "  Planned production:")
			for _, productID := range sortedMapKeys(day.ProductQuantities) {
				lines = append(lines, "    - "+formatProduct(result, productID, day.ProductQuantities[productID], decimals))
			}
		}

		if len(day.MachineUsage) > 0 {
			lines = append(lines, "  Machine utilization:")
			for _, usage := range sortedUsages(day.MachineUsage) {
				lines = append(lines, formatMachineUsage(result, usage, decimals)...)
			}
		}

		if len(day.ResourceBalance) > 0 {
			lines = append(lines, "  Day resource balance:")
			for _, resourceID := range sortedMapKeys(day.ResourceBalance) {
				lines = append(lines, "    - "+formatResource(result, resourceID, day.ResourceBalance[resourceID], decimals))
			}
		}

		if alerts := day.CapacityAlerts(); len(alerts) > 0 {
			lines = append(lines, "  Capacity alerts:")
			for _, alert := range alerts {
				lines = append(lines, fmt.Sprintf("    - %s (%s) exceeds %s: %s / %s",
					alert.MachineName, alert.MachineID, alert.CapacityKey,
					formatQuantity(alert.Used, decimals), formatQuantity(alert.Limit, decimals)))
			}
		}

		lines = append(lines, "")
	}

	lines = append(lines, "Consolidated horizon summary:")

	if totals := result.OverallProductQuantities(); len(totals) > 0 {
		lines = append(lines, "  Accumulated production:")
		for _, productID := range sortedMapKeys(totals) {
			lines = append(lines, "    - "+formatProduct(result, productID, totals[productID], decimals))
		}
	}

	if totals := result.OverallResourceBalance(); len(totals) > 0 {
		lines = append(lines, "  Accumulated resource balance:")
		for _, resourceID := range sortedMapKeys(totals) {
			lines = append(lines, "    - "+formatResource(result, resourceID, totals[resourceID], decimals))
		}
	}

	if peaks := maxUtilization(result); len(peaks) > 0 {
		lines = append(lines, "  Peak machine utilization:")
		for _, peak := range peaks {
			percent := decimal.NewFromFloat(peak.ratio * 100).StringFixed(1)
			lines = append(lines, fmt.Sprintf("    - %s (%s) - %s: %s%% (%s of %s on %s)",
				peak.machineName, peak.machineID, peak.capacityKey, percent,
				formatQuantity(peak.used, decimals), formatQuantity(peak.limit, decimals), peak.day))
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// formatQuantity renders a value with a fixed number of decimal places.
func formatQuantity(value float64, decimals int32) string {
	return decimal.NewFromFloat(value).StringFixed(decimals)
}

func formatResource(result *dto.SimulationResult, resourceID string, value float64, decimals int32) string {
	name, unit := resourceID, ""
	if resource, ok := result.Plant.LookupResource(resourceID); ok {
		name = resource.Name
		unit = resource.Unit
	}
	quantity := formatQuantity(value, decimals)
	if unit != "" {
		return fmt.Sprintf("%s: %s %s", name, quantity, unit)
	}
	return fmt.Sprintf("%s: %s", name, quantity)
}

func formatProduct(result *dto.SimulationResult, productID string, quantity float64, decimals int32) string {
	name, unit := productID, ""
	if product, ok := result.Plant.LookupProduct(productID); ok {
		name = product.Name
		unit = product.Unit
	}
	formatted := formatQuantity(quantity, decimals)
	if unit != "" {
		return fmt.Sprintf("%s: %s %s", name, formatted, unit)
	}
	return fmt.Sprintf("%s: %s", name, formatted)
}

func formatMachineUsage(result *dto.SimulationResult, usage *dto.MachineUsage, decimals int32) []string {
	lines := []string{fmt.Sprintf("  - %s (%s)", usage.Machine.Name, usage.Machine.ID)}

	for _, key := range sortedMapKeys(usage.CapacityUsed) {
		used := usage.CapacityUsed[key]
		limit, ok := usage.Machine.CapacityLimit(key)
		if !ok {
			lines = append(lines, fmt.Sprintf("      %s: %s (no limit defined)", key, formatQuantity(used, decimals)))
			continue
		}
		percent := decimal.NewFromFloat(used / limit * 100).StringFixed(1)
		lines = append(lines, fmt.Sprintf("      %s: %s / %s (%s%%)",
			key, formatQuantity(used, decimals), formatQuantity(limit, decimals), percent))
	}

	if len(usage.ResourceBalance) > 0 {
		lines = append(lines, "      Associated resources:")
		for _, resourceID := range sortedMapKeys(usage.ResourceBalance) {
			lines = append(lines, "        "+formatResource(result, resourceID, usage.ResourceBalance[resourceID], decimals))
		}
	}
	return lines
}

// utilizationPeak is the highest observed used/limit ratio for one machine
// and capacity key across the whole horizon.
type utilizationPeak struct {
	machineID   string
	machineName string
	capacityKey string
	ratio       float64
	used        float64
	limit       float64
	day         string
}

// maxUtilization ranks (machine, capacity key) pairs by their peak ratio,
// highest first. Keys without a declared limit are skipped.
func maxUtilization(result *dto.SimulationResult) []utilizationPeak {
	type peakKey struct {
		machineID   string
		capacityKey string
	}
	peaks := make(map[peakKey]utilizationPeak)

	for _, day := range result.Days {
		for _, usage := range day.MachineUsage {
			for key, used := range usage.CapacityUsed {
				limit, ok := usage.Machine.CapacityLimit(key)
				if !ok {
					continue
				}
				ratio := used / limit
				id := peakKey{machineID: usage.Machine.ID, capacityKey: key}
				if current, exists := peaks[id]; !exists || ratio > current.ratio {
					peaks[id] = utilizationPeak{
						machineID:   usage.Machine.ID,
						machineName: usage.Machine.Name,
						capacityKey: key,
						ratio:       ratio,
						used:        used,
						limit:       limit,
						day:         day.Date.Format("2006-01-02"),
					}
				}
			}
		}
	}

	entries := make([]utilizationPeak, 0, len(peaks))
	for _, peak := range peaks {
		entries = append(entries, peak)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ratio != entries[j].ratio {
			return entries[i].ratio > entries[j].ratio
		}
		if entries[i].machineID != entries[j].machineID {
			return entries[i].machineID < entries[j].machineID
		}
		return entries[i].capacityKey < entries[j].capacityKey
	})
	return entries
}

func sortedUsages(usages map[string]*dto.MachineUsage) []*dto.MachineUsage {
	keys := make([]string, 0, len(usages))
	for key := range usages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	entries := make([]*dto.MachineUsage, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, usages[key])
	}
	return entries
}

func sortedMapKeys(values map[string]float64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
