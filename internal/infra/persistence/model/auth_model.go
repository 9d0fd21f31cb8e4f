package model

import (
	"time"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUserModel mirrors the 'auth_users' table. Metadata is stored as JSON.
type AuthUserModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key"`
	Email        string              `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string              `gorm:"type:varchar(255);not null"`
	Metadata     entity.UserMetadata `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthUserModel) TableName() string {
	return "auth_users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
