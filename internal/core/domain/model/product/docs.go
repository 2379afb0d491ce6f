// Package product provides the catalog Product aggregate.
//
// A product has a fixed set of static attributes (name, type, weight, stock
// quantity, physical state, price) and an open set of dynamic string
// attributes that business rules can match on (for example "inflammable" or
// "promotion"). Invariants are checked once on construction:
//   - name and type are required
//   - weight and price are strictly positive
//   - quantity is never negative
//   - physical state is Solid, Liquid or Gaseous
//
// Stock only moves through HasStock, DecreaseStock and IncreaseStock, which
// keep quantity non-negative.
package product
