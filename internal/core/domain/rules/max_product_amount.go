package rules

import (
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// MaxProductAmount fails when any line item orders more than Max units.
type MaxProductAmount struct {
	Max int
}

func NewMaxProductAmount(maxAmount int) MaxProductAmount {
	return MaxProductAmount{Max: maxAmount}
}

func (r MaxProductAmount) Pass(o *order.Order, _ Products) bool {
	for _, line := range o.Lines() {
		if line.Quantity > r.Max {
			return false
		}
	}
	return true
}

func (r MaxProductAmount) Violation(nested string) *errs.PolicyViolationError {
	return violation(fmt.Sprintf("more than %d items of the same product not allowed", r.Max), nested)
}
