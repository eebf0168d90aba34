package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // 秒
}

// JWTCustomClaims はJWTに含めるクレーム。sub にテナントIDを入れる
type JWTCustomClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
