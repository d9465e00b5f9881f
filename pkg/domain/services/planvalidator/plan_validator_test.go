package planvalidator

import (
	"testing"
	"time"

	"github.com/plantops/balancer/pkg/domain/entities"
)

func buildPlant(t *testing.T) *entities.Plant {
	t.Helper()
	plant, err := entities.NewPlant(
		nil,
		[]*entities.MachineGroup{{ID: "dig", Name: "Digesters"}},
		[]*entities.Machine{{ID: "D1", Name: "Digester 1", GroupID: "dig"}},
		[]*entities.Product{{ID: "pulp", Name: "Pulp"}},
	)
	if err != nil {
		t.Fatalf("NewPlant failed: %v", err)
	}
	return plant
}

func order(t *testing.T, productID, machineID string) *entities.ProductionOrder {
	t.Helper()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o, err := entities.NewProductionOrder(date, productID, machineID, 10)
	if err != nil {
		t.Fatalf("NewProductionOrder failed: %v", err)
	}
	return o
}

func TestValidatePlan_Valid(t *testing.T) {
	plant := buildPlant(t)
	plan := entities.NewProductionPlan([]*entities.ProductionOrder{
		order(t, "pulp", "D1"),
	})

	result := NewPlanValidator().ValidatePlan(plan, plant)
	if !result.Valid() {
		t.Errorf("expected valid plan, got errors: %v", result.Errors)
	}
}

func TestValidatePlan_CollectsAllViolations(t *testing.T) {
	plant := buildPlant(t)
	plan := entities.NewProductionPlan([]*entities.ProductionOrder{
		order(t, "nope", "D1"),
		order(t, "pulp", "ghost"),
	})

	result := NewPlanValidator().ValidatePlan(plan, plant)
	if result.Valid() {
		t.Fatal("expected invalid plan")
	}
	if len(result.UnknownProducts) != 1 || result.UnknownProducts[0] != "nope" {
		t.Errorf("unexpected unknown products: %v", result.UnknownProducts)
	}
	if len(result.UnknownMachines) != 1 || result.UnknownMachines[0] != "ghost" {
		t.Errorf("unexpected unknown machines: %v", result.UnknownMachines)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", result.Errors)
	}
}

func TestValidatePlan_DeduplicatesRepeatedReferences(t *testing.T) {
	plant := buildPlant(t)
	plan := entities.NewProductionPlan([]*entities.ProductionOrder{
		order(t, "nope", "ghost"),
		order(t, "nope", "ghost"),
		order(t, "nope", "ghost"),
	})

	result := NewPlanValidator().ValidatePlan(plan, plant)
	if len(result.UnknownProducts) != 1 || len(result.UnknownMachines) != 1 {
		t.Errorf("repeated references must be reported once: %v / %v",
			result.UnknownProducts, result.UnknownMachines)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 deduplicated errors, got %v", result.Errors)
	}
}
