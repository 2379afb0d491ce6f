package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	locked bool
}

// NewGormOrderRepository creates a repository bound to db, which is either
// the pool or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ForUpdate returns a repository whose reads lock the order rows they return
// until the surrounding transaction ends. A second transaction loading the
// same order waits and then sees the committed state.
func (r *GormOrderRepository) ForUpdate() *GormOrderRepository {
	return &GormOrderRepository{db: r.db, locked: true}
}

func (r *GormOrderRepository) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.locked {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// Add inserts the order and its lines and assigns the generated id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes state and timestamps. Lines are immutable and left alone.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"state":        dto.State,
		"processed_at": dto.ProcessedAt,
		"shipped_at":   dto.ShippedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.query(ctx).Preload("Lines").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPlacedBefore retrieves Placed orders created before cutoff, oldest first.
func (r *GormOrderRepository) GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.query(ctx).
		Preload("Lines").
		Where("state = ? AND created_at < ?", order.Placed.String(), cutoff).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
