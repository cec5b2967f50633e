package cart

import (
	"context"
	"errors"
	"fmt"

	cartRepo "quickview.GO/model/repository/cart"
	"quickview.GO/service/quickview"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingToken    = errors.New("cart token is required")
)

// StoreCart keeps carts in the database.
type StoreCart struct {
	repo *cartRepo.CartRepository
}

func NewStoreCart(repo *cartRepo.CartRepository) *StoreCart {
	return &StoreCart{repo: repo}
}

func (c *StoreCart) Add(ctx context.Context, token string, line quickview.CartLine) error {
	if token == "" {
		return ErrMissingToken
	}
	if line.VariantID == "" {
		return fmt.Errorf("variant id is required")
	}
	if line.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, line.Quantity)
	}
	_, err := c.repo.AddItem(ctx, token, line.VariantID, line.Quantity)
	return err
}

// Lines returns the cart's lines in the order they were first added.
func (c *StoreCart) Lines(ctx context.Context, token string) ([]quickview.CartLine, error) {
	found, err := c.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	lines := make([]quickview.CartLine, len(found.Items))
	for i, item := range found.Items {
		lines[i] = quickview.CartLine{VariantID: item.VariantID, Quantity: item.Quantity}
	}
	return lines, nil
}
