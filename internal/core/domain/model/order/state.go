package order

import (
	"fmt"
	"time"

	"sales/internal/pkg/errs"
)

// CancellationWindow is how long after creation a placed order may still be cancelled.
const CancellationWindow = 24 * time.Hour

// State is the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──process──> InProcess ──ship──> Shipped
//	   │
//	   └──cancel (within 24h)──> Cancelled
//
// Shipped and Cancelled are final. The set of states is closed: every
// transition is a switch over the four tags, so adding a state means revisiting
// each of Process, Ship and Cancel.
type State int

const (
	// Unknown is the zero value. It never validates and never transitions.
	Unknown State = iota
	Placed
	InProcess
	Shipped
	Cancelled
)

var stateNames = map[State]string{
	Placed:    "Placed",
	InProcess: "InProcess",
	Shipped:   "Shipped",
	Cancelled: "Cancelled",
}

// Rejection reasons returned by the transition methods.
const (
	reasonMustBeInProcess      = "order must be in process before shipping"
	reasonCancelWindowExpired  = "order cannot be cancelled more than 24 hours after creation"
	reasonAlreadyInProcess     = "order is already in process"
	reasonCannotCancelInProc   = "order cannot be cancelled once in process"
	reasonAlreadyShipped       = "order has already been shipped"
	reasonCannotCancelShipped  = "order cannot be cancelled once shipped"
	reasonAlreadyCancelled     = "order has already been cancelled"
	reasonUnknownStateNoAction = "order state is unknown"
)

// ParseState decodes a canonical state name and rejects anything else.
// Use it for input coming from callers. Matching is exact, so "placed" is
// rejected.
//
// Example:
//
//	state, err := order.ParseState(c.QueryParam("state"))
//	if err != nil {
//	    return err // InvalidInput, answered with 400
//	}
func ParseState(name string) (State, error) {
	for state, stateName := range stateNames {
		if stateName == name {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%q is not one of Placed, InProcess, Shipped, Cancelled", name),
	)
}

// StateFromString decodes a canonical state name, falling back to Placed for
// empty or unrecognized input. Rows written before the state column was
// populated are read back through this function.
func StateFromString(name string) State {
	state, err := ParseState(name)
	if err != nil {
		return Placed
	}
	return state
}

// String returns the canonical name, or "Unknown" for invalid values.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// Process moves a placed order into processing.
//
// Returns:
//   - InProcess when s is Placed
//   - Unknown and a PolicyViolationError with the table's reason otherwise
func (s State) Process() (State, error) {
	switch s {
	case Placed:
		return InProcess, nil
	case InProcess:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyInProcess)
	case Shipped:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyShipped)
	case Cancelled:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyCancelled)
	default:
		return Unknown, errs.NewPolicyViolationError(reasonUnknownStateNoAction)
	}
}

// Ship moves an order in process to shipped.
//
// Returns:
//   - Shipped when s is InProcess
//   - Unknown and a PolicyViolationError with the table's reason otherwise
func (s State) Ship() (State, error) {
	switch s {
	case Placed:
		return Unknown, errs.NewPolicyViolationError(reasonMustBeInProcess)
	case InProcess:
		return Shipped, nil
	case Shipped:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyShipped)
	case Cancelled:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyCancelled)
	default:
		return Unknown, errs.NewPolicyViolationError(reasonUnknownStateNoAction)
	}
}

// Cancel cancels a placed order as long as no more than CancellationWindow
// has elapsed between createdAt and now. Exactly 24h is still in time.
//
// Parameters:
//   - createdAt: when the order was placed
//   - now: when cancellation is requested
//
// Returns:
//   - Cancelled when s is Placed and the window is open
//   - Unknown and a PolicyViolationError with the table's reason otherwise
func (s State) Cancel(createdAt, now time.Time) (State, error) {
	switch s {
	case Placed:
		if now.Sub(createdAt) > CancellationWindow {
			return Unknown, errs.NewPolicyViolationError(reasonCancelWindowExpired)
		}
		return Cancelled, nil
	case InProcess:
		return Unknown, errs.NewPolicyViolationError(reasonCannotCancelInProc)
	case Shipped:
		return Unknown, errs.NewPolicyViolationError(reasonCannotCancelShipped)
	case Cancelled:
		return Unknown, errs.NewPolicyViolationError(reasonAlreadyCancelled)
	default:
		return Unknown, errs.NewPolicyViolationError(reasonUnknownStateNoAction)
	}
}
