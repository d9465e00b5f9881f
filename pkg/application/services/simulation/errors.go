package simulation

import "errors"

// Failures raised while resolving recipe steps against the plant. All abort
// the run; callers discriminate with errors.Is.
var (
	// ErrMissingField reports a step that declares a target variant but
	// omits the field identifying it (machine_id or group_id).
	ErrMissingField = errors.New("recipe step missing required field")

	// ErrGroupMismatch reports an order-machine step whose required group
	// does not match the group of the machine named on the order.
	ErrGroupMismatch = errors.New("order machine outside required group")

	// ErrNegativeAllocation reports an explicit allocation weight below zero.
	ErrNegativeAllocation = errors.New("allocation weight cannot be negative")

	// ErrNoMatchingAllocation reports an explicit allocation whose keys match
	// no machine in the target group.
	ErrNoMatchingAllocation = errors.New("allocation matches no machine in group")

	// ErrUnknownTarget reports a step target that is not one of the
	// recognized variants.
	ErrUnknownTarget = errors.New("unknown recipe step target")
)
