package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/core/domain/rules"
)

type productSpec struct {
	id         int64
	typ        string
	weight     float64
	state      product.PhysicalState
	price      float64
	attributes map[string]string
}

func solid(id int64) productSpec {
	return productSpec{id: id, typ: "tool", weight: 1, state: product.Solid, price: 10}
}

func newProducts(t *testing.T, specs ...productSpec) rules.Products {
	t.Helper()

	products := make(rules.Products, len(specs))
	for _, s := range specs {
		p, err := product.RestoreProduct(s.id, "product", s.typ, s.weight, 100, s.state, s.price, s.attributes)
		require.NoError(t, err)
		products[s.id] = p
	}
	return products
}

type line struct {
	productID int64
	quantity  int
}

func newOrder(t *testing.T, lines ...line) *order.Order {
	t.Helper()

	ids := make([]int64, len(lines))
	quantities := make([]int, len(lines))
	for i, l := range lines {
		ids[i] = l.productID
		quantities[i] = l.quantity
	}

	o, err := order.NewOrder(ids, quantities, kernel.MustNewEmail("buyer@example.com"), time.Now())
	require.NoError(t, err)
	return o
}
