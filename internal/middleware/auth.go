package middleware

import (
	"context"
	"net/http"
	"strings"

	"wordnote/internal/config"
	"wordnote/internal/model"
	"wordnote/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, ok := bearerToken(r)
			if !ok {
				logger.Warn("JWT auth failed: Authorization header missing or malformed")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// 署名アルゴリズムは HS256 のみ許可。exp も検証される
			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			tenantID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
			ctx = WithLogger(ctx, logger.With("tenant_id", tenantID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken は "Bearer {token}" 形式のヘッダーからトークンを取り出す。
// EventSource はヘッダーを付けられないため、SSE 用に access_token クエリも受け付ける
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if t := r.URL.Query().Get("access_token"); t != "" {
			return t, true
		}
		return "", false
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
		return "", false
	}
	return headerParts[1], true
}

func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}
