package rules

import (
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// DefaultAvoidValue is matched when MustAvoidAttribute is built without a value.
const DefaultAvoidValue = "true"

// MustAvoidAttribute fails when any resolved product has Attribute equal to Value.
type MustAvoidAttribute struct {
	Attribute string
	Value     string
}

// NewMustAvoidAttribute builds the rule; an empty value means DefaultAvoidValue.
func NewMustAvoidAttribute(attribute, value string) MustAvoidAttribute {
	if value == "" {
		value = DefaultAvoidValue
	}
	return MustAvoidAttribute{Attribute: attribute, Value: value}
}

func (r MustAvoidAttribute) Pass(_ *order.Order, products Products) bool {
	for _, p := range products {
		if v, ok := AllAttributes(p)[r.Attribute]; ok && v == r.Value {
			return false
		}
	}
	return true
}

func (r MustAvoidAttribute) Violation(nested string) *errs.PolicyViolationError {
	return violation(fmt.Sprintf("product with %s: %s not allowed", r.Attribute, r.Value), nested)
}
