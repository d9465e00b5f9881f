package entities

import "fmt"

// Machine represents physical equipment belonging to a machine group.
// Capacity maps a metric key to the daily limit for that metric; a key
// absent from the map is unconstrained. Capacity is set at load time and
// read-only during simulation.
type Machine struct {
	ID       string
	Name     string
	GroupID  string
	Capacity map[string]float64
}

// NewMachine creates a validated Machine.
func NewMachine(id, name, groupID string, capacity map[string]float64) (*Machine, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("machine %s: group id cannot be empty", id)
	}
	for key, limit := range capacity {
		if limit < 0 {
			return nil, fmt.Errorf("machine %s: capacity %q cannot be negative, got %g", id, key, limit)
		}
	}
	if capacity == nil {
		capacity = map[string]float64{}
	}
	return &Machine{ID: id, Name: name, GroupID: groupID, Capacity: capacity}, nil
}

// CapacityLimit returns the daily limit for a metric key. The second return
// is false when the machine is unconstrained for that key (absent or zero).
func (m *Machine) CapacityLimit(key string) (float64, bool) {
	limit, ok := m.Capacity[key]
	if !ok || limit == 0 {
		return 0, false
	}
	return limit, true
}
