package token_adapter

import (
	"fmt"
	"strings"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInspector читает claims токена бэкенда. Подпись проверяет сам бэкенд
// на каждом запросе, здесь нужны только срок действия и роль.
type TokenInspector struct {
	parser *jwt.Parser
}

func NewTokenInspector() *TokenInspector {
	return &TokenInspector{parser: jwt.NewParser()}
}

type backendClaims struct {
	Role   string      `json:"role"`
	Roles  []string    `json:"roles"`
	UserID interface{} `json:"userId"`
	jwt.RegisteredClaims
}

func (i *TokenInspector) Inspect(token string) (*domain.TokenInfo, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	claims := &backendClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %w", err)
	}

	info := &domain.TokenInfo{Subject: claims.Subject, Role: claims.Role}
	if info.Role == "" && len(claims.Roles) > 0 {
		info.Role = claims.Roles[0]
	}
	info.Role = strings.ToUpper(strings.TrimPrefix(info.Role, "ROLE_"))

	if claims.UserID != nil {
		// userId точнее subject, который часто содержит email
		switch v := claims.UserID.(type) {
		case string:
			info.Subject = v
		case float64:
			info.Subject = fmt.Sprintf("%.0f", v)
		}
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		info.ExpiresAt = &exp
	}
	return info, nil
}
