package entities

import (
	"fmt"
	"time"
)

// ProductionOrder is the planned quantity of one product on one calendar day.
// MachineID is only consulted by recipe steps targeting the order's machine.
type ProductionOrder struct {
	Date      time.Time
	ProductID string
	MachineID string
	Quantity  float64
}

// NewProductionOrder creates a validated ProductionOrder. The date is
// normalized to UTC midnight so orders group and compare by calendar day.
func NewProductionOrder(date time.Time, productID, machineID string, quantity float64) (*ProductionOrder, error) {
	if productID == "" {
		return nil, fmt.Errorf("production order product id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("order for %s on %s: quantity cannot be negative, got %g",
			productID, date.Format("2006-01-02"), quantity)
	}
	return &ProductionOrder{
		Date:      NormalizeDay(date),
		ProductID: productID,
		MachineID: machineID,
		Quantity:  quantity,
	}, nil
}

// NormalizeDay truncates a timestamp to UTC midnight.
func NormalizeDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
