package loaders

import (
	"fmt"
	"sort"
	"time"

	"github.com/plantops/balancer/pkg/domain/entities"
)

type planFile struct {
	Orders []orderEntry `mapstructure:"orders"`
}

type orderEntry struct {
	Date      string  `mapstructure:"date"`
	ProductID string  `mapstructure:"product_id"`
	MachineID string  `mapstructure:"machine_id"`
	Quantity  float64 `mapstructure:"quantity"`
}

// LoadPlan loads production orders from a file. Orders are sorted by
// (date, product id, machine id) so downstream iteration is deterministic.
func (l *Loader) LoadPlan(path string) (*entities.ProductionPlan, error) {
	var file planFile
	if err := readFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to load production plan %s: %w", path, err)
	}

	orders := make([]*entities.ProductionOrder, 0, len(file.Orders))
	for i, entry := range file.Orders {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return nil, fmt.Errorf("production plan %s: order %d has invalid date %q", path, i+1, entry.Date)
		}
		order, err := entities.NewProductionOrder(date, entry.ProductID, entry.MachineID, entry.Quantity)
		if err != nil {
			return nil, fmt.Errorf("production plan %s: order %d: %w", path, i+1, err)
		}
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].Date.Equal(orders[j].Date) {
			return orders[i].Date.Before(orders[j].Date)
		}
		if orders[i].ProductID != orders[j].ProductID {
			return orders[i].ProductID < orders[j].ProductID
		}
		return orders[i].MachineID < orders[j].MachineID
	})

	return entities.NewProductionPlan(orders), nil
}
