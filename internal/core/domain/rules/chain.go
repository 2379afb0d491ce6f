package rules

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// NodeID addresses a rule inside a ChainBuilder.
type NodeID int

// NoNode marks an absent link.
const NoNode NodeID = -1

var ErrChainHasCycle = errors.New("rule chain has a cycle")

type node struct {
	rule     Rule
	next     NodeID
	combined NodeID
}

// ChainBuilder assembles rules into a graph. The first invalid call is
// remembered and reported by Build.
type ChainBuilder struct {
	nodes []node
	err   error
}

func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{}
}

// Add stores rule as a new, unlinked node.
func (b *ChainBuilder) Add(rule Rule) NodeID {
	if rule == nil && b.err == nil {
		b.err = errs.NewValueIsRequiredError("rule")
	}
	b.nodes = append(b.nodes, node{rule: rule, next: NoNode, combined: NoNode})
	return NodeID(len(b.nodes) - 1)
}

// Then makes next the continuation of id once id passes. The continuation is
// handed down the combined links of id as well.
func (b *ChainBuilder) Then(id, next NodeID) NodeID {
	if !b.known(id) || !b.known(next) {
		return id
	}
	b.setNext(id, next, make(map[NodeID]bool))
	return id
}

// Combine attaches combined to id: when id fails, combined is validated and
// the failure only stands if combined fails too. combined inherits id's
// current continuation.
func (b *ChainBuilder) Combine(id, combined NodeID) NodeID {
	if !b.known(id) || !b.known(combined) {
		return id
	}
	b.nodes[id].combined = combined
	b.setNext(combined, b.nodes[id].next, make(map[NodeID]bool))
	return id
}

func (b *ChainBuilder) setNext(id, next NodeID, seen map[NodeID]bool) {
	if seen[id] {
		b.fail(ErrChainHasCycle)
		return
	}
	seen[id] = true

	b.nodes[id].next = next
	if c := b.nodes[id].combined; c != NoNode {
		b.setNext(c, next, seen)
	}
}

func (b *ChainBuilder) known(id NodeID) bool {
	if id < 0 || int(id) >= len(b.nodes) {
		b.fail(fmt.Errorf("unknown rule node %d", id))
		return false
	}
	return true
}

func (b *ChainBuilder) fail(cause error) {
	if b.err == nil {
		b.err = errs.NewValueIsInvalidErrorWithCause("rule chain", cause)
	}
}

// Build freezes the graph reachable from root.
//
// The builder may be reused afterwards: the returned Chain holds its own copy
// of the nodes, so later Add/Then/Combine calls do not affect it.
//
// Returns:
//   - the immutable chain
//   - InvalidInput when an earlier call referenced an unknown node, a rule was
//     nil, or the graph reachable from root contains a cycle
//
// Example:
//
//	b := rules.NewChainBuilder()
//	amount := b.Add(rules.NewMaxProductAmount(3))
//	gaseous := b.Add(rules.NewMustAvoidAttribute(rules.AttributeState, "Gaseous"))
//	b.Combine(amount, gaseous)
//
//	chain, err := b.Build(amount)
func (b *ChainBuilder) Build(root NodeID) (*Chain, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.known(root) {
		return nil, b.err
	}

	const (
		unvisited = iota
		visiting
		done
	)
	marks := make([]int, len(b.nodes))
	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		if id == NoNode {
			return true
		}
		switch marks[id] {
		case visiting:
			return false
		case done:
			return true
		}
		marks[id] = visiting
		if !visit(b.nodes[id].next) || !visit(b.nodes[id].combined) {
			return false
		}
		marks[id] = done
		return true
	}
	if !visit(root) {
		return nil, errs.NewValueIsInvalidErrorWithCause("rule chain", ErrChainHasCycle)
	}

	nodes := make([]node, len(b.nodes))
	copy(nodes, b.nodes)
	return &Chain{nodes: nodes, root: root}, nil
}

// Chain is an immutable rule graph.
type Chain struct {
	nodes []node
	root  NodeID
}

// Validate walks the chain from its root and returns the first violation.
//
// A passing rule continues with its next link. A failing rule with a combined
// link validates the combined rule first: if that passes the whole chain is
// accepted, otherwise the failing rule's violation is returned with the
// combined reason appended as "combined with ...".
func (c *Chain) Validate(o *order.Order, products Products) error {
	return c.validate(c.root, o, products)
}

func (c *Chain) validate(id NodeID, o *order.Order, products Products) error {
	for id != NoNode {
		n := c.nodes[id]
		if n.rule.Pass(o, products) {
			id = n.next
			continue
		}

		if n.combined == NoNode {
			return n.rule.Violation("")
		}

		err := c.validate(n.combined, o, products)
		if err == nil {
			return nil
		}
		var violation *errs.PolicyViolationError
		if errors.As(err, &violation) {
			return n.rule.Violation(violation.Reason)
		}
		return err
	}
	return nil
}
