package rules

import (
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

// Products are the resolved catalog entries of an order, keyed by product id.
// Ids the catalog did not know are simply absent.
type Products map[int64]*product.Product

// Rule is a single policy check.
type Rule interface {
	// Pass reports whether the order complies with this rule alone.
	Pass(o *order.Order, products Products) bool
	// Violation builds the rejection for this rule. nested is the reason of
	// the combined rule that also failed, or "" when there is none.
	Violation(nested string) *errs.PolicyViolationError
}

func violation(reason, nested string) *errs.PolicyViolationError {
	if nested == "" {
		return errs.NewPolicyViolationError(reason)
	}
	return errs.NewPolicyViolationError(reason + " combined with " + nested)
}
