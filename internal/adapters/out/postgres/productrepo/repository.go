package productrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db     *gorm.DB
	locked bool
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ForUpdate returns a repository whose reads take row locks (SELECT ... FOR
// UPDATE). It must only be used on an open transaction: the locks are held
// until it commits or rolls back, so stock read here cannot be changed by
// another transaction before this one writes it back.
func (r *GormProductRepository) ForUpdate() *GormProductRepository {
	return &GormProductRepository{db: r.db, locked: true}
}

func (r *GormProductRepository) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.locked {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// Add inserts the product with its attributes and assigns the generated id.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return r.translate(err, dto.Name)
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes every column and replaces the attribute set.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":     dto.Name,
		"type":     dto.Type,
		"weight":   dto.Weight,
		"quantity": dto.Quantity,
		"state":    dto.State,
		"price":    dto.Price,
	})
	if result.Error != nil {
		return r.translate(result.Error, dto.Name)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	if err := db.Where("product_id = ?", dto.ID).Delete(&ProductAttributeDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Attributes) == 0 {
		return nil
	}
	return db.Create(&dto.Attributes).Error
}

// Get retrieves a product with its attributes.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.query(ctx).Preload("Attributes").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs resolves ids in one round trip. Unknown ids are left out. Rows are
// read in id order so concurrent lockers acquire locks in the same order.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error) {
	products := make(map[int64]*product.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.query(ctx).
		Preload("Attributes").
		Where("id IN ?", ids).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}

	return products, nil
}

// translate maps a unique violation on products.name to an invalid input
// error. Anything else is returned unchanged.
func (r *GormProductRepository) translate(err error, name string) error {
	if translator, ok := r.db.Dialector.(gorm.ErrorTranslator); ok {
		err = translator.Translate(err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name",
			fmt.Errorf("a product named %q already exists", name),
		)
	}
	return err
}
