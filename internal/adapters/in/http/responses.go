package http

import (
	"time"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
)

type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type NewOrder struct {
	Items []LineItem `json:"items"`
}

type Order struct {
	ID          int64      `json:"id"`
	Owner       string     `json:"owner"`
	State       string     `json:"state"`
	CreatedAt   time.Time  `json:"createdAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	ShippedAt   *time.Time `json:"shippedAt,omitempty"`
	Items       []LineItem `json:"items"`
}

type NewProduct struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Weight     float64           `json:"weight"`
	Quantity   int               `json:"quantity"`
	State      string            `json:"state"`
	Price      float64           `json:"price"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type Product struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Weight     float64           `json:"weight"`
	Quantity   int               `json:"quantity"`
	State      string            `json:"state"`
	Price      float64           `json:"price"`
	Attributes map[string]string `json:"attributes"`
}

type AttributeValue struct {
	Value string `json:"value"`
}

// StockLevel is the body of a restock request. Quantity is required.
type StockLevel struct {
	Quantity *int `json:"quantity"`
}

func orderFromAggregate(o *order.Order) Order {
	items := make([]LineItem, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		items = append(items, LineItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	return Order{
		ID:          o.ID(),
		Owner:       o.Owner().String(),
		State:       o.State().String(),
		CreatedAt:   o.CreatedAt(),
		ProcessedAt: o.ProcessedAt(),
		ShippedAt:   o.ShippedAt(),
		Items:       items,
	}
}

func orderFromView(v queries.OrderView) Order {
	items := make([]LineItem, 0, len(v.Lines))
	for _, line := range v.Lines {
		items = append(items, LineItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	return Order{
		ID:          v.ID,
		Owner:       v.Owner,
		State:       v.State,
		CreatedAt:   v.CreatedAt,
		ProcessedAt: v.ProcessedAt,
		ShippedAt:   v.ShippedAt,
		Items:       items,
	}
}

func ordersFromViews(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}
	return response
}

func productFromAggregate(p *product.Product) Product {
	return Product{
		ID:         p.ID(),
		Name:       p.Name(),
		Type:       p.Type(),
		Weight:     p.Weight(),
		Quantity:   p.Quantity(),
		State:      p.State().String(),
		Price:      p.Price(),
		Attributes: p.Attributes(),
	}
}

func productFromView(v queries.ProductView) Product {
	attributes := v.Attributes
	if attributes == nil {
		attributes = map[string]string{}
	}

	return Product{
		ID:         v.ID,
		Name:       v.Name,
		Type:       v.Type,
		Weight:     v.Weight,
		Quantity:   v.Quantity,
		State:      v.State,
		Price:      v.Price,
		Attributes: attributes,
	}
}
