package entities

import (
	"testing"
	"time"
)

func TestNewProductionOrder_Validation(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	order, err := NewProductionOrder(date, "pulp", "D1", 100)
	if err != nil {
		t.Fatalf("expected valid order, got error: %v", err)
	}
	if order.Quantity != 100 {
		t.Errorf("expected quantity 100, got %g", order.Quantity)
	}

	if _, err := NewProductionOrder(date, "", "D1", 100); err == nil {
		t.Error("expected error for empty product id")
	}
	if _, err := NewProductionOrder(date, "pulp", "D1", -1); err == nil {
		t.Error("expected error for negative quantity")
	}
	if _, err := NewProductionOrder(date, "pulp", "D1", 0); err != nil {
		t.Errorf("zero quantity should be allowed, got %v", err)
	}
}

func TestNewProductionOrder_NormalizesDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	timestamp := time.Date(2024, 1, 2, 17, 45, 30, 0, loc)

	order, err := NewProductionOrder(timestamp, "pulp", "D1", 10)
	if err != nil {
		t.Fatalf("NewProductionOrder failed: %v", err)
	}

	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !order.Date.Equal(want) {
		t.Errorf("expected date normalized to %v, got %v", want, order.Date)
	}
}
