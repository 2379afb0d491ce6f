// Package queries contains read-only use cases. Handlers read straight from
// the database with SQL and return flat views; they never load aggregates.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sales/internal/core/domain/model/order"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID          int64
	Owner       string
	State       string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	ShippedAt   *time.Time
	Lines       []LineView
}

// LineView is one line item of an OrderView.
type LineView struct {
	ProductID int64
	Quantity  int
}

// ProductView is the read model of a catalog product. Attributes holds only
// the dynamic attributes.
type ProductView struct {
	ID         int64
	Name       string
	Type       string
	Weight     float64
	Quantity   int
	State      string
	Price      float64
	Attributes map[string]string
}

// selectOrders runs the orders query built from where and args and attaches
// line items to every row. Rows come back ordered by id.
func selectOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner,
			state,
			created_at,
			processed_at,
			shipped_at
		FROM orders
		`+where+`
		ORDER BY id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view  OrderView
			state string
		)
		if err = rows.Scan(
			&view.ID,
			&view.Owner,
			&state,
			&view.CreatedAt,
			&view.ProcessedAt,
			&view.ShippedAt,
		); err != nil {
			return nil, err
		}
		view.State = order.StateFromString(state).String()
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachLines(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachLines(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Lines = make([]LineView, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, product_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			line    LineView
		)
		if err = rows.Scan(&orderID, &line.ProductID, &line.Quantity); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Lines = append(orders[i].Lines, line)
		}
	}
	return rows.Err()
}

// selectProducts runs the products query built from where and args and
// attaches the dynamic attributes of every row. Rows come back ordered by id.
func selectProducts(ctx context.Context, db *gorm.DB, where string, args ...any) ([]ProductView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			type,
			weight,
			quantity,
			state,
			price
		FROM products
		`+where+`
		ORDER BY id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var view ProductView
		if err = rows.Scan(
			&view.ID,
			&view.Name,
			&view.Type,
			&view.Weight,
			&view.Quantity,
			&view.State,
			&view.Price,
		); err != nil {
			return nil, err
		}
		view.Attributes = make(map[string]string)
		products = append(products, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachAttributes(ctx, db, products); err != nil {
		return nil, err
	}
	return products, nil
}

func attachAttributes(ctx context.Context, db *gorm.DB, products []ProductView) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	index := make(map[int64]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			value
		FROM product_attributes
		WHERE product_id IN ?
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID   int64
			name, value string
		)
		if err = rows.Scan(&productID, &name, &value); err != nil {
			return err
		}
		if i, ok := index[productID]; ok {
			products[i].Attributes[name] = value
		}
	}
	return rows.Err()
}
