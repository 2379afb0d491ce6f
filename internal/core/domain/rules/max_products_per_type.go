package rules

import (
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// MaxProductsPerType caps how many distinct products of a type one order may
// contain. Types without a cap are unrestricted.
type MaxProductsPerType struct {
	Caps map[string]int
}

func NewMaxProductsPerType(caps map[string]int) MaxProductsPerType {
	return MaxProductsPerType{Caps: caps}
}

func (r MaxProductsPerType) Pass(_ *order.Order, products Products) bool {
	counts := make(map[string]int)
	for _, p := range products {
		if p == nil {
			continue
		}
		counts[p.Type()]++
	}

	for typ, count := range counts {
		if limit, ok := r.Caps[typ]; ok && count > limit {
			return false
		}
	}
	return true
}

// Violation ignores nested: the message stands on its own.
func (r MaxProductsPerType) Violation(string) *errs.PolicyViolationError {
	return errs.NewPolicyViolationError("maximum number of products per type exceeded")
}
