package loaders

import (
	"testing"
	"time"
)

const planJSON = `{
  "orders": [
    {"date": "2024-01-02", "product_id": "pulp", "machine_id": "D1", "quantity": 50},
    {"date": "2024-01-01", "product_id": "pulp", "machine_id": "D2", "quantity": 90},
    {"date": "2024-01-01", "product_id": "paper", "machine_id": "MP1", "quantity": 60}
  ]
}`

func TestLoadPlan_SortsOrders(t *testing.T) {
	path := writeFixture(t, "plan.json", planJSON)

	plan, err := NewLoader().LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if len(plan.Orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(plan.Orders))
	}

	// Sorted by date, then product id, then machine id.
	wantProducts := []string{"paper", "pulp", "pulp"}
	for i, want := range wantProducts {
		if plan.Orders[i].ProductID != want {
			t.Errorf("order %d: expected product %s, got %s", i, want, plan.Orders[i].ProductID)
		}
	}
	wantFirstDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !plan.Orders[0].Date.Equal(wantFirstDate) {
		t.Errorf("expected first order on %v, got %v", wantFirstDate, plan.Orders[0].Date)
	}
	if plan.Orders[2].Quantity != 50 {
		t.Errorf("expected last order quantity 50, got %g", plan.Orders[2].Quantity)
	}
}

func TestLoadPlan_YAML(t *testing.T) {
	path := writeFixture(t, "plan.yaml", `orders:
  - date: "2024-01-01"
    product_id: pulp
    machine_id: D1
    quantity: 90
`)

	plan, err := NewLoader().LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if len(plan.Orders) != 1 || plan.Orders[0].Quantity != 90 {
		t.Errorf("unexpected plan: %+v", plan.Orders)
	}
}

func TestLoadPlan_RejectsInvalidDate(t *testing.T) {
	path := writeFixture(t, "plan.json", `{
  "orders": [{"date": "01/02/2024", "product_id": "pulp", "machine_id": "D1", "quantity": 10}]
}`)

	if _, err := NewLoader().LoadPlan(path); err == nil {
		t.Error("expected error for invalid date format")
	}
}

func TestLoadPlan_RejectsNegativeQuantity(t *testing.T) {
	path := writeFixture(t, "plan.json", `{
  "orders": [{"date": "2024-01-01", "product_id": "pulp", "machine_id": "D1", "quantity": -5}]
}`)

	if _, err := NewLoader().LoadPlan(path); err == nil {
		t.Error("expected error for negative quantity")
	}
}
