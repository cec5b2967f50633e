package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	cartEntity "quickview.GO/model/entity/cart"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem adds qty of variantID to the cart identified by token, creating the
// cart on first use. A variant already in the cart has its quantity raised.
func (r *CartRepository) AddItem(ctx context.Context, token, variantID string, qty int) (*cartEntity.CartItem, error) {
	var item cartEntity.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := cartEntity.Cart{Token: token}
		if err := tx.Where(cartEntity.Cart{Token: token}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
		err := tx.Where("cart_token = ? AND variant_id = ?", token, variantID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += qty
			return tx.Model(&item).Update("quantity", item.Quantity).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			var count int64
			if err := tx.Model(&cartEntity.CartItem{}).Where("cart_token = ?", token).Count(&count).Error; err != nil {
				return err
			}
			item = cartEntity.CartItem{CartToken: token, VariantID: variantID, Quantity: qty, Position: int(count)}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByToken loads the cart with its items in the order they were added.
func (r *CartRepository) FindByToken(ctx context.Context, token string) (*cartEntity.Cart, error) {
	var c cartEntity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("token = ?", token).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
