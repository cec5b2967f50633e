package catalog

import (
	"time"

	"gorm.io/datatypes"
)

// ProductOption is one option dimension; its position is its index.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ProductVariant is one purchasable combination of option values.
type ProductVariant struct {
	ID      string   `json:"id"`
	Title   string   `json:"title,omitempty"`
	Options []string `json:"options"`
}

// Product represents quickview_product table
type Product struct {
	ProductID   uint                                `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id,omitempty"`
	Handle      string                              `gorm:"column:handle;type:varchar(255);not null;uniqueIndex" json:"handle"`
	Title       string                              `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Price       int64                               `gorm:"column:price;not null;default:0" json:"price"`
	Description string                              `gorm:"column:description;type:text" json:"description"`
	Images      datatypes.JSONSlice[string]         `gorm:"column:images" json:"images"`
	Options     datatypes.JSONSlice[ProductOption]  `gorm:"column:options" json:"options"`
	Variants    datatypes.JSONSlice[ProductVariant] `gorm:"column:variants" json:"variants"`
	CreatedAt   time.Time                           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "quickview_product"
}
