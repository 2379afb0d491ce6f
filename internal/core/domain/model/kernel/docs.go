// Package kernel provides the value objects shared by the sales domain model.
//
// The package includes:
//   - UUID: identifier of published domain events
//   - Email: the owning customer of an order
//   - Session: the caller of a single command or query
//
// Values are immutable and validated on construction; their zero values fail
// Validate so that partially built objects are caught early.
package kernel
