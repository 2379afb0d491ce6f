// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding line items, owner, timestamps and state
//   - State: the closed set Placed, InProcess, Shipped, Cancelled with its
//     transition functions
//   - StateChanged: the domain event recorded on each successful transition
//
// Key business rules:
//   - Orders start in Placed and follow Placed -> InProcess -> Shipped
//   - A Placed order may be cancelled up to 24 hours after creation
//   - Illegal transitions are rejected with errs.PolicyViolationError
//   - Process and ship timestamps are set only by successful transitions
package order
