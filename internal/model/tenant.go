package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant はユーザーの基本情報です。単語などのデータはすべてテナント単位で分離されます
type Tenant struct {
	TenantID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type ContextKey string

const (
	TenantIDKey ContextKey = "tenantID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TenantResponse はクライアントに返すユーザー情報の構造体
type TenantResponse struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTenantResponse(t *Tenant) *TenantResponse {
	return &TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		Email:     t.Email,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}
