package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/core/domain/rules"
	"sales/internal/pkg/errs"
)

type stubRule struct {
	name  string
	pass  bool
	calls *int
}

func (r stubRule) Pass(*order.Order, rules.Products) bool {
	if r.calls != nil {
		*r.calls++
	}
	return r.pass
}

func (r stubRule) Violation(nested string) *errs.PolicyViolationError {
	if nested == "" {
		return errs.NewPolicyViolationError(r.name)
	}
	return errs.NewPolicyViolationError(r.name + " combined with " + nested)
}

func TestChain_MaxAmountCombinedWithStateRules(t *testing.T) {
	b := rules.NewChainBuilder()
	maxAmount := b.Add(rules.NewMaxProductAmount(3))
	gaseous := b.Add(rules.NewMustAvoidAttribute("state", "Gaseous"))
	liquid := b.Add(rules.NewMustAvoidAttribute("state", "Liquid"))
	b.Combine(maxAmount, gaseous)
	b.Then(maxAmount, liquid)

	chain, err := b.Build(maxAmount)
	require.NoError(t, err)

	solidProducts := newProducts(t, solid(1))
	assert.NoError(t, chain.Validate(newOrder(t, line{1, 4}), solidProducts))

	gasProducts := newProducts(t, productSpec{id: 1, typ: "gas", weight: 1, state: product.Gaseous, price: 5})
	err = chain.Validate(newOrder(t, line{1, 4}), gasProducts)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPolicyViolation)
	assert.Contains(t, err.Error(), "more than 3")
	assert.Contains(t, err.Error(), "product with state: Gaseous not allowed")
	assert.Equal(t,
		"more than 3 items of the same product not allowed combined with product with state: Gaseous not allowed",
		err.Error(),
	)

	liquidProducts := newProducts(t, productSpec{id: 1, typ: "drink", weight: 1, state: product.Liquid, price: 5})
	err = chain.Validate(newOrder(t, line{1, 2}), liquidProducts)
	require.Error(t, err)
	assert.Equal(t, "product with state: Liquid not allowed", err.Error())
}

func TestChain_NestedCombinationOnlyFailsWhenEveryLinkFails(t *testing.T) {
	b := rules.NewChainBuilder()
	maxAmount := b.Add(rules.NewMaxProductAmount(3))
	gaseous := b.Add(rules.NewMustAvoidAttribute("state", "Gaseous"))
	liquid := b.Add(rules.NewMustAvoidAttribute("state", "Liquid"))
	b.Combine(maxAmount, b.Combine(gaseous, liquid))

	chain, err := b.Build(maxAmount)
	require.NoError(t, err)

	gas := productSpec{id: 1, typ: "gas", weight: 1, state: product.Gaseous, price: 5}
	water := productSpec{id: 2, typ: "drink", weight: 1, state: product.Liquid, price: 5}

	assert.NoError(t, chain.Validate(newOrder(t, line{1, 4}), newProducts(t, gas)))

	err = chain.Validate(newOrder(t, line{1, 4}, line{2, 1}), newProducts(t, gas, water))
	require.Error(t, err)
	assert.Equal(t,
		"more than 3 items of the same product not allowed combined with "+
			"product with state: Gaseous not allowed combined with product with state: Liquid not allowed",
		err.Error(),
	)
}

func TestChain_CombinedRuleContinuesWithParentSuccessor(t *testing.T) {
	var afterCalls int

	b := rules.NewChainBuilder()
	first := b.Add(stubRule{name: "first"})
	fallback := b.Add(stubRule{name: "fallback", pass: true})
	after := b.Add(stubRule{name: "after", calls: &afterCalls})
	b.Combine(first, fallback)
	b.Then(first, after)

	chain, err := b.Build(first)
	require.NoError(t, err)

	err = chain.Validate(newOrder(t, line{1, 1}), nil)
	require.Error(t, err)
	assert.Equal(t, "first combined with after", err.Error())
	assert.Equal(t, 1, afterCalls)
}

func TestChain_CombineAfterThenInheritsContinuation(t *testing.T) {
	var afterCalls int

	b := rules.NewChainBuilder()
	first := b.Add(stubRule{name: "first"})
	after := b.Add(stubRule{name: "after", pass: true, calls: &afterCalls})
	fallback := b.Add(stubRule{name: "fallback", pass: true})
	b.Then(first, after)
	b.Combine(first, fallback)

	chain, err := b.Build(first)
	require.NoError(t, err)

	require.NoError(t, chain.Validate(newOrder(t, line{1, 1}), nil))
	assert.Equal(t, 1, afterCalls)
}

func TestChain_PassingRulesStopAtEnd(t *testing.T) {
	b := rules.NewChainBuilder()
	first := b.Add(stubRule{name: "first", pass: true})
	second := b.Add(stubRule{name: "second", pass: true})
	b.Then(first, second)

	chain, err := b.Build(first)
	require.NoError(t, err)
	assert.NoError(t, chain.Validate(newOrder(t, line{1, 1}), nil))
}

func TestChainBuilder_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		build    func(b *rules.ChainBuilder) rules.NodeID
		contains string
	}{
		{
			name: "order cycle",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				a := b.Add(stubRule{name: "a"})
				c := b.Add(stubRule{name: "c"})
				b.Then(a, c)
				b.Then(c, a)
				return a
			},
			contains: "cycle",
		},
		{
			name: "self loop",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				a := b.Add(stubRule{name: "a"})
				b.Then(a, a)
				return a
			},
			contains: "cycle",
		},
		{
			name: "combined cycle",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				a := b.Add(stubRule{name: "a"})
				c := b.Add(stubRule{name: "c"})
				b.Combine(a, c)
				b.Combine(c, a)
				return a
			},
			contains: "cycle",
		},
		{
			name: "unknown link",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				a := b.Add(stubRule{name: "a"})
				b.Then(a, 42)
				return a
			},
			contains: "unknown rule node 42",
		},
		{
			name: "unknown root",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				b.Add(stubRule{name: "a"})
				return 7
			},
			contains: "unknown rule node 7",
		},
		{
			name: "nil rule",
			build: func(b *rules.ChainBuilder) rules.NodeID {
				return b.Add(nil)
			},
			contains: "rule",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := rules.NewChainBuilder()
			root := tc.build(b)

			chain, err := b.Build(root)

			require.Error(t, err)
			assert.Nil(t, chain)
			assert.Contains(t, err.Error(), tc.contains)
			assert.True(t,
				errorsIsAny(err, errs.ErrValueIsInvalid, errs.ErrValueIsRequired),
				"expected an invalid input error, got %v", err,
			)
		})
	}
}
