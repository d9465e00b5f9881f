package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plantops/balancer/pkg/domain/entities"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

const plantJSON = `{
  "resources": [
    {"id": "steam", "name": "Steam", "unit": "t"},
    {"id": "fiber"}
  ],
  "machine_groups": [
    {"id": "dig", "name": "Digesters"}
  ],
  "machines": [
    {"id": "D1", "name": "Digester 1", "group_id": "dig", "capacity": {"ton": 120}},
    {"id": "D2", "group_id": "dig"}
  ],
  "products": [
    {
      "id": "pulp",
      "name": "Pulp",
      "unit": "t",
      "steps": [
        {
          "name": "digest",
          "target": "group",
          "group_id": "dig",
          "allocation": {"D1": 2, "D2": 1},
          "capacity_usage": {"ton": 1.0},
          "resource_changes": {"steam": -0.3, "fiber": -1.5}
        }
      ]
    }
  ]
}`

const plantYAML = `resources:
  - id: steam
    name: Steam
    unit: t
machine_groups:
  - id: dig
    name: Digesters
machines:
  - id: D1
    group_id: dig
    capacity:
      ton: 120
products:
  - id: pulp
    unit: t
    steps:
      - name: digest
        target: group
        group_id: dig
        capacity_usage:
          ton: 1.0
        resource_changes:
          steam: -0.3
`

func TestLoadPlant_JSON(t *testing.T) {
	path := writeFixture(t, "plant.json", plantJSON)

	plant, err := NewLoader().LoadPlant(path)
	if err != nil {
		t.Fatalf("LoadPlant failed: %v", err)
	}

	machine, err := plant.Machine("D1")
	if err != nil {
		t.Fatalf("Machine lookup failed: %v", err)
	}
	if machine.Name != "Digester 1" || machine.GroupID != "dig" {
		t.Errorf("unexpected machine: %+v", machine)
	}
	if limit, ok := machine.CapacityLimit("ton"); !ok || limit != 120 {
		t.Errorf("expected ton limit 120, got %g (ok=%t)", limit, ok)
	}

	product, err := plant.Product("pulp")
	if err != nil {
		t.Fatalf("Product lookup failed: %v", err)
	}
	if len(product.Steps) != 1 {
		t.Fatalf("expected 1 recipe step, got %d", len(product.Steps))
	}
	step := product.Steps[0]
	if step.Target != entities.TargetGroup || step.GroupID != "dig" {
		t.Errorf("unexpected step: %+v", step)
	}
	if step.Allocation["D1"] != 2 || step.ResourceChanges["fiber"] != -1.5 {
		t.Errorf("step maps not preserved: %+v", step)
	}
}

func TestLoadPlant_YAML(t *testing.T) {
	path := writeFixture(t, "plant.yaml", plantYAML)

	plant, err := NewLoader().LoadPlant(path)
	if err != nil {
		t.Fatalf("LoadPlant failed: %v", err)
	}
	if _, err := plant.Machine("D1"); err != nil {
		t.Errorf("Machine lookup failed: %v", err)
	}
	product, err := plant.Product("pulp")
	if err != nil {
		t.Fatalf("Product lookup failed: %v", err)
	}
	if product.Steps[0].ResourceChanges["steam"] != -0.3 {
		t.Errorf("unexpected resource changes: %+v", product.Steps[0].ResourceChanges)
	}
}

func TestLoadPlant_NamesDefaultToID(t *testing.T) {
	path := writeFixture(t, "plant.json", plantJSON)

	plant, err := NewLoader().LoadPlant(path)
	if err != nil {
		t.Fatalf("LoadPlant failed: %v", err)
	}

	resource, ok := plant.LookupResource("fiber")
	if !ok {
		t.Fatal("expected fiber resource")
	}
	if resource.Name != "fiber" {
		t.Errorf("expected name to default to id, got %q", resource.Name)
	}
	machine, err := plant.Machine("D2")
	if err != nil {
		t.Fatalf("Machine lookup failed: %v", err)
	}
	if machine.Name != "D2" {
		t.Errorf("expected name to default to id, got %q", machine.Name)
	}
}

func TestLoadPlant_RejectsInvalidTarget(t *testing.T) {
	path := writeFixture(t, "plant.json", `{
  "machine_groups": [{"id": "dig"}],
  "machines": [{"id": "D1", "group_id": "dig"}],
  "products": [{"id": "pulp", "steps": [{"name": "digest", "target": "everywhere"}]}]
}`)

	if _, err := NewLoader().LoadPlant(path); err == nil {
		t.Error("expected error for unsupported step target")
	}
}

func TestLoadPlant_RejectsUnknownGroupReference(t *testing.T) {
	path := writeFixture(t, "plant.json", `{
  "machine_groups": [{"id": "dig"}],
  "machines": [{"id": "D1", "group_id": "nope"}]
}`)

	if _, err := NewLoader().LoadPlant(path); err == nil {
		t.Error("expected error for machine in undeclared group")
	}
}

func TestLoadPlant_MissingFile(t *testing.T) {
	if _, err := NewLoader().LoadPlant(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
