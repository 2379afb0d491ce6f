package product

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// PhysicalState is the matter state of a product. The set is closed.
type PhysicalState int

const (
	// UnknownState is the zero value and never validates.
	UnknownState PhysicalState = iota
	Solid
	Liquid
	Gaseous
)

var physicalStateNames = map[PhysicalState]string{
	Solid:   "Solid",
	Liquid:  "Liquid",
	Gaseous: "Gaseous",
}

// ParsePhysicalState maps a canonical name ("Solid", "Liquid", "Gaseous") to its value.
func ParsePhysicalState(name string) (PhysicalState, error) {
	for state, stateName := range physicalStateNames {
		if stateName == name {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause(
		"physical state",
		fmt.Errorf("%q is not one of Solid, Liquid, Gaseous", name),
	)
}

func (s PhysicalState) String() string {
	if name, ok := physicalStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s PhysicalState) Validate() error {
	if _, ok := physicalStateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("physical state", fmt.Errorf("%d is not a valid physical state", s))
	}
	return nil
}
