package auth

import (
	"time"

	"gorm.io/gorm"

	entity "quickview.GO/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked, unexpired token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.ApiToken, error) {
	var t entity.ApiToken
	err := r.db.Where("token = ? AND revoked = ?", token, false).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create stores a new token.
func (r *AuthRepository) Create(t *entity.ApiToken) error {
	return r.db.Create(t).Error
}

// Revoke marks token as revoked.
func (r *AuthRepository) Revoke(token string) error {
	return r.db.Model(&entity.ApiToken{}).Where("token = ?", token).Update("revoked", true).Error
}
