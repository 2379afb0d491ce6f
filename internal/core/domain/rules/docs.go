// Package rules decides whether a candidate order complies with the business
// policy of the catalog.
//
// A Rule is a predicate over an order and its resolved products. Rules are
// linked into a Chain, a small graph built once at start-up:
//
//   - the order link ("Then") is followed when a rule passes
//   - the combined link ("Combine") is followed when a rule fails; the failure
//     only counts if the combined rule fails as well, and the resulting message
//     explains both ("... not allowed combined with ...")
//
// Combining a rule re-points the combined rule's continuation to the order link
// of the rule it is attached to, so every branch ends in the same downstream
// sequence. Nodes live in an arena and are addressed by NodeID; Build rejects
// unknown ids and cycles.
//
// An Engine owns the chain roots of one RuleSet and returns the first
// violation found, as an *errs.PolicyViolationError.
package rules
