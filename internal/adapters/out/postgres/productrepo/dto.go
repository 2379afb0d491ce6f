// Package productrepo maps catalog products to the products and
// product_attributes tables.
package productrepo

import (
	"sales/internal/core/domain/model/product"
)

// ProductDTO is one row of the products table.
type ProductDTO struct {
	ID         int64                 `gorm:"primaryKey;autoIncrement"`
	Name       string                `gorm:"type:varchar(255);not null;uniqueIndex"`
	Type       string                `gorm:"type:varchar(255);not null;index"`
	Weight     float64               `gorm:"not null"`
	Quantity   int                   `gorm:"type:int;not null"`
	State      string                `gorm:"type:varchar(16);not null"`
	Price      float64               `gorm:"not null"`
	Attributes []ProductAttributeDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ProductAttributeDTO is one dynamic attribute of a product.
type ProductAttributeDTO struct {
	ProductID int64  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"primaryKey;type:varchar(255)"`
	Value     string `gorm:"type:text;not null"`
}

func (ProductAttributeDTO) TableName() string {
	return "product_attributes"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	attributes := make([]ProductAttributeDTO, 0)
	for name, value := range aggregate.Attributes() {
		attributes = append(attributes, ProductAttributeDTO{
			ProductID: aggregate.ID(),
			Name:      name,
			Value:     value,
		})
	}

	return ProductDTO{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Type:       aggregate.Type(),
		Weight:     aggregate.Weight(),
		Quantity:   aggregate.Quantity(),
		State:      aggregate.State().String(),
		Price:      aggregate.Price(),
		Attributes: attributes,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	state, err := product.ParsePhysicalState(dto.State)
	if err != nil {
		return nil, err
	}

	attributes := make(map[string]string, len(dto.Attributes))
	for _, attr := range dto.Attributes {
		attributes[attr.Name] = attr.Value
	}

	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Type,
		dto.Weight,
		dto.Quantity,
		state,
		dto.Price,
		attributes,
	)
}
