// Package orderrepo maps order aggregates to the orders and order_lines tables.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table. State is stored by its canonical
// name so that rows stay readable and survive reordering of the enum.
type OrderDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Owner       string         `gorm:"type:varchar(320);not null;index"`
	State       string         `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	ProcessedAt *time.Time
	ShippedAt   *time.Time
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one line item of an order.
type OrderLineDTO struct {
	OrderID   int64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	Quantity  int   `gorm:"type:int;not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Owner:       aggregate.Owner().String(),
		State:       aggregate.State().String(),
		CreatedAt:   aggregate.CreatedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
		ShippedAt:   aggregate.ShippedAt(),
		Lines:       lines,
	}
}

// toDomain rebuilds the aggregate. Unknown state names fall back to Placed,
// see order.StateFromString.
func toDomain(dto OrderDTO) (*order.Order, error) {
	owner, err := kernel.NewEmail(dto.Owner)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, order.LineItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	return order.RestoreOrder(
		dto.ID,
		lines,
		order.StateFromString(dto.State),
		dto.CreatedAt,
		dto.ProcessedAt,
		dto.ShippedAt,
		owner,
	)
}
