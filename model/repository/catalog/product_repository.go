package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "quickview.GO/model/entity/catalog"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByHandle returns gorm.ErrRecordNotFound when no product has handle.
func (r *ProductRepository) FindByHandle(ctx context.Context, handle string) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserts p or, when the handle exists, replaces its content.
func (r *ProductRepository) Save(ctx context.Context, p *catalogEntity.Product) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "handle"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "price", "description", "images", "options", "variants", "updated_at"}),
	}).Create(p).Error
}

// Handles lists every stored handle in insertion order.
func (r *ProductRepository) Handles(ctx context.Context) ([]string, error) {
	var handles []string
	err := r.db.WithContext(ctx).Model(&catalogEntity.Product{}).Order("product_id").Pluck("handle", &handles).Error
	return handles, err
}

func (r *ProductRepository) Delete(ctx context.Context, handle string) error {
	return r.db.WithContext(ctx).Where("handle = ?", handle).Delete(&catalogEntity.Product{}).Error
}
