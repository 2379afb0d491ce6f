package rules

import (
	"strings"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// RuleSet names one of the built-in policies.
type RuleSet string

const (
	OriginalRuleSet RuleSet = "original"
	ModifiedRuleSet RuleSet = "modified"
)

// ParseRuleSet accepts a rule set name in any case. An empty name selects
// ModifiedRuleSet.
func ParseRuleSet(s string) (RuleSet, error) {
	switch RuleSet(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModifiedRuleSet:
		return ModifiedRuleSet, nil
	case OriginalRuleSet:
		return OriginalRuleSet, nil
	default:
		return "", errs.NewValueIsInvalidError("rule set")
	}
}

// Engine validates orders against the chains of one rule set.
type Engine struct {
	set    RuleSet
	chains []*Chain
}

// NewEngine builds the chains of set from cfg once. The engine is immutable
// and safe for concurrent use.
//
// Parameters:
//   - cfg: the policy limits, usually DefaultConfiguration()
//   - set: OriginalRuleSet or ModifiedRuleSet
//
// Returns:
//   - the engine
//   - InvalidInput for an unknown rule set or a chain that fails to build
func NewEngine(cfg Configuration, set RuleSet) (*Engine, error) {
	var (
		chains []*Chain
		err    error
	)
	switch set {
	case OriginalRuleSet:
		chains, err = originalChains(cfg)
	case ModifiedRuleSet:
		chains, err = modifiedChains(cfg)
	default:
		return nil, errs.NewValueIsInvalidError("rule set")
	}
	if err != nil {
		return nil, err
	}
	return &Engine{set: set, chains: chains}, nil
}

// NewEngineWithChains builds an engine over caller supplied chains.
func NewEngineWithChains(chains ...*Chain) *Engine {
	return &Engine{chains: chains}
}

func (e *Engine) RuleSet() RuleSet {
	return e.set
}

// Validate returns nil when the order passes every chain, otherwise the first
// violation.
//
// Chains are evaluated in order and none of them modifies o or products.
// Products missing from products count as having no attributes.
//
// Returns:
//   - nil when the order is acceptable
//   - PolicyViolationError whose Reason is the message shown to the customer
//   - ValueIsRequiredError when o is nil
//
// Example:
//
//	engine, _ := rules.NewEngine(rules.DefaultConfiguration(), rules.ModifiedRuleSet)
//	if err := engine.Validate(o, products); err != nil {
//	    return err // e.g. "value weight > to 15 not allowed"
//	}
func (e *Engine) Validate(o *order.Order, products Products) error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	for _, chain := range e.chains {
		if err := chain.Validate(o, products); err != nil {
			return err
		}
	}
	return nil
}

func originalChains(cfg Configuration) ([]*Chain, error) {
	b := NewChainBuilder()

	maxAmount := b.Add(NewMaxProductAmount(cfg.MaxProducts))
	maxWeight := b.Add(NewMinMaxValue(AttributeWeight, cfg.MaxWeightOriginal, Above, true))
	gaseous := b.Add(NewMustAvoidAttribute(AttributeState, cfg.StateGaseous))
	liquid := b.Add(NewMustAvoidAttribute(AttributeState, cfg.StateLiquid))

	b.Then(maxAmount, maxWeight)
	b.Then(maxWeight, gaseous)
	b.Combine(gaseous, liquid)

	chain, err := b.Build(maxAmount)
	if err != nil {
		return nil, err
	}
	return []*Chain{chain}, nil
}

func modifiedChains(cfg Configuration) ([]*Chain, error) {
	b := NewChainBuilder()

	maxWeight := b.Add(NewMinMaxValue(AttributeWeight, cfg.MaxWeightModified, Above, true))
	maxAmount := b.Add(NewMaxProductAmount(cfg.MaxProducts))
	gaseous := b.Add(NewMustAvoidAttribute(AttributeState, cfg.StateGaseous))
	liquid := b.Add(NewMustAvoidAttribute(AttributeState, cfg.StateLiquid))
	perType := b.Add(NewMaxProductsPerType(cfg.MaxProductsPerType))
	promotion := b.Add(NewMustAvoidAttribute(cfg.PromotionAttribute, ""))
	minPrice := b.Add(NewMinMaxValue(AttributePrice, cfg.PromotionMinPrice, Below, false))
	inflammable := b.Add(NewMustAvoidAttribute(cfg.InflammableAttribute, ""))
	fuel := b.Add(NewMustAvoidAttribute(cfg.FuelAttribute, ""))

	b.Then(maxWeight, maxAmount)
	b.Combine(maxAmount, b.Combine(gaseous, liquid))
	b.Then(maxAmount, perType)
	b.Then(perType, promotion)
	b.Combine(promotion, minPrice)
	b.Then(promotion, inflammable)
	b.Combine(inflammable, fuel)

	chain, err := b.Build(maxWeight)
	if err != nil {
		return nil, err
	}
	return []*Chain{chain}, nil
}
