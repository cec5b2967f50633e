package entity

import "time"

// ApiToken is a bearer token accepted on /api when AUTH_TYPE=token.
type ApiToken struct {
	TokenID   uint       `gorm:"column:token_id;primaryKey;autoIncrement"`
	Name      string     `gorm:"column:name;type:varchar(64);not null"`
	Token     string     `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	Revoked   bool       `gorm:"column:revoked;not null;default:false"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (ApiToken) TableName() string {
	return "quickview_api_token"
}
