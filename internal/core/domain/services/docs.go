// Package services provides domain services that coordinate more than one
// aggregate of the sales system.
//
// The package includes:
//   - StockKeeper: checks, takes and returns the stock an order needs
package services
