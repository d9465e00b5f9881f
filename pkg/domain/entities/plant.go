package entities

import (
	"fmt"
	"sort"
)

// Plant is the aggregate root owning all reference data for one plant
// configuration. It is built once at load time and read-only afterwards.
type Plant struct {
	resources       map[string]*Resource
	machineGroups   map[string]*MachineGroup
	machines        map[string]*Machine
	products        map[string]*Product
	machinesByGroup map[string][]*Machine
}

// NewPlant assembles a Plant and derives the group-to-machines index. Every
// machine must reference an existing machine group; duplicate ids of any
// entity kind are rejected.
func NewPlant(resources []*Resource, groups []*MachineGroup, machines []*Machine, products []*Product) (*Plant, error) {
	plant := &Plant{
		resources:       make(map[string]*Resource, len(resources)),
		machineGroups:   make(map[string]*MachineGroup, len(groups)),
		machines:        make(map[string]*Machine, len(machines)),
		products:        make(map[string]*Product, len(products)),
		machinesByGroup: make(map[string][]*Machine, len(groups)),
	}

	for _, resource := range resources {
		if _, exists := plant.resources[resource.ID]; exists {
			return nil, fmt.Errorf("duplicate resource id %q", resource.ID)
		}
		plant.resources[resource.ID] = resource
	}
	for _, group := range groups {
		if _, exists := plant.machineGroups[group.ID]; exists {
			return nil, fmt.Errorf("duplicate machine group id %q", group.ID)
		}
		plant.machineGroups[group.ID] = group
		plant.machinesByGroup[group.ID] = nil
	}
	for _, machine := range machines {
		if _, exists := plant.machines[machine.ID]; exists {
			return nil, fmt.Errorf("duplicate machine id %q", machine.ID)
		}
		if _, exists := plant.machineGroups[machine.GroupID]; !exists {
			return nil, fmt.Errorf("machine %q references unknown group %q", machine.ID, machine.GroupID)
		}
		plant.machines[machine.ID] = machine
		plant.machinesByGroup[machine.GroupID] = append(plant.machinesByGroup[machine.GroupID], machine)
	}
	for _, product := range products {
		if _, exists := plant.products[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", product.ID)
		}
		plant.products[product.ID] = product
	}

	// Keep group membership in a stable order so even splits resolve the
	// same machine sequence on every run.
	for groupID := range plant.machinesByGroup {
		sort.Slice(plant.machinesByGroup[groupID], func(i, j int) bool {
			return plant.machinesByGroup[groupID][i].ID < plant.machinesByGroup[groupID][j].ID
		})
	}

	return plant, nil
}

// Machine returns the machine with the given id.
func (p *Plant) Machine(id string) (*Machine, error) {
	machine, ok := p.machines[id]
	if !ok {
		return nil, fmt.Errorf("unknown machine %q: %w", id, ErrNotFound)
	}
	return machine, nil
}

// Product returns the product with the given id.
func (p *Plant) Product(id string) (*Product, error) {
	product, ok := p.products[id]
	if !ok {
		return nil, fmt.Errorf("unknown product %q: %w", id, ErrNotFound)
	}
	return product, nil
}

// MachinesInGroup returns the member machines of a group, ordered by id.
func (p *Plant) MachinesInGroup(groupID string) ([]*Machine, error) {
	machines, ok := p.machinesByGroup[groupID]
	if !ok {
		return nil, fmt.Errorf("unknown machine group %q: %w", groupID, ErrNotFound)
	}
	if len(machines) == 0 {
		return nil, fmt.Errorf("machine group %q: %w", groupID, ErrEmptyGroup)
	}
	return machines, nil
}

// LookupResource returns a resource by id for labelling purposes.
func (p *Plant) LookupResource(id string) (*Resource, bool) {
	resource, ok := p.resources[id]
	return resource, ok
}

// LookupMachine returns a machine by id without raising on absence.
func (p *Plant) LookupMachine(id string) (*Machine, bool) {
	machine, ok := p.machines[id]
	return machine, ok
}

// LookupProduct returns a product by id without raising on absence.
func (p *Plant) LookupProduct(id string) (*Product, bool) {
	product, ok := p.products[id]
	return product, ok
}

// Resources returns all resources ordered by id.
func (p *Plant) Resources() []*Resource {
	resources := make([]*Resource, 0, len(p.resources))
	for _, resource := range p.resources {
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources
}

// Products returns all products ordered by id.
func (p *Plant) Products() []*Product {
	products := make([]*Product, 0, len(p.products))
	for _, product := range p.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
