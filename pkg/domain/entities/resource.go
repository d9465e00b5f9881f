package entities

import "fmt"

// Resource represents a material or utility tracked by the plant model.
// Unit is a display string and may be empty.
type Resource struct {
	ID   string
	Name string
	Unit string
}

// NewResource creates a validated Resource.
func NewResource(id, name, unit string) (*Resource, error) {
	if id == "" {
		return nil, fmt.Errorf("resource id cannot be empty")
	}
	return &Resource{ID: id, Name: name, Unit: unit}, nil
}

// MachineGroup is a logical group of machines with the same function.
type MachineGroup struct {
	ID   string
	Name string
}

// NewMachineGroup creates a validated MachineGroup.
func NewMachineGroup(id, name string) (*MachineGroup, error) {
	if id == "" {
		return nil, fmt.Errorf("machine group id cannot be empty")
	}
	return &MachineGroup{ID: id, Name: name}, nil
}
