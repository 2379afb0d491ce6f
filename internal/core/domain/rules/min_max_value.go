package rules

import (
	"fmt"
	"strconv"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

// Comparison selects which side of the threshold is a violation.
type Comparison string

const (
	// Below triggers when the total is under the threshold.
	Below Comparison = "<"
	// Above triggers when the total is over the threshold.
	Above Comparison = ">"
)

// MinMaxValue compares a numeric attribute of the ordered products with a
// threshold. With Combined set the total is the sum of value × quantity over
// all lines; otherwise it is the largest single value. Missing or unparsable
// values count as zero. An unrecognized comparison never passes.
type MinMaxValue struct {
	Attribute string
	Amount    float64
	Mode      Comparison
	Combined  bool
}

func NewMinMaxValue(attribute string, amount float64, mode Comparison, combined bool) MinMaxValue {
	return MinMaxValue{
		Attribute: attribute,
		Amount:    amount,
		Mode:      mode,
		Combined:  combined,
	}
}

func (r MinMaxValue) Pass(o *order.Order, products Products) bool {
	total := r.total(o, products)

	switch r.Mode {
	case Below:
		return total >= r.Amount
	case Above:
		return total <= r.Amount
	default:
		return false
	}
}

func (r MinMaxValue) Violation(nested string) *errs.PolicyViolationError {
	return violation(fmt.Sprintf("value %s %s to %s not allowed", r.Attribute, r.Mode, formatNumber(r.Amount)), nested)
}

func (r MinMaxValue) total(o *order.Order, products Products) float64 {
	var total float64
	for _, line := range o.Lines() {
		value := attributeValue(products[line.ProductID], r.Attribute)
		if r.Combined {
			total += value * float64(line.Quantity)
		} else if value > total {
			total = value
		}
	}
	return total
}

func attributeValue(p *product.Product, attribute string) float64 {
	raw, ok := AllAttributes(p)[attribute]
	if !ok {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
