package entities

import "time"

// ProductionPlan is an ordered collection of production orders.
type ProductionPlan struct {
	Orders []*ProductionOrder
}

// NewProductionPlan creates a plan over the given orders.
func NewProductionPlan(orders []*ProductionOrder) *ProductionPlan {
	return &ProductionPlan{Orders: orders}
}

// OrdersByDay groups the plan's orders by calendar day.
func (p *ProductionPlan) OrdersByDay() map[time.Time][]*ProductionOrder {
	grouped := make(map[time.Time][]*ProductionOrder)
	for _, order := range p.Orders {
		grouped[order.Date] = append(grouped[order.Date], order)
	}
	return grouped
}

// FilterByDateRange returns a new plan containing only orders within the
// inclusive [start, end] range. A nil bound leaves that side open.
func (p *ProductionPlan) FilterByDateRange(start, end *time.Time) *ProductionPlan {
	var filtered []*ProductionOrder
	for _, order := range p.Orders {
		if start != nil && order.Date.Before(NormalizeDay(*start)) {
			continue
		}
		if end != nil && order.Date.After(NormalizeDay(*end)) {
			continue
		}
		filtered = append(filtered, order)
	}
	return NewProductionPlan(filtered)
}
