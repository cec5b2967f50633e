package cart

import "time"

// Cart represents quickview_cart table. The token is the storefront cart
// cookie value.
type Cart struct {
	Token     string     `gorm:"column:token;type:varchar(64);primaryKey" json:"token"`
	Items     []CartItem `gorm:"foreignKey:CartToken;references:Token" json:"items"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Cart) TableName() string {
	return "quickview_cart"
}

// CartItem represents quickview_cart_item table
type CartItem struct {
	ItemID    uint   `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id,omitempty"`
	CartToken string `gorm:"column:cart_token;type:varchar(64);not null;index:idx_cart_variant,unique" json:"cart_token"`
	VariantID string `gorm:"column:variant_id;type:varchar(64);not null;index:idx_cart_variant,unique" json:"variant_id"`
	Quantity  int    `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Position  int    `gorm:"column:position;not null;default:0" json:"position"`
}

func (CartItem) TableName() string {
	return "quickview_cart_item"
}
