package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// DemoActorID é o ator usado pelo log de auditoria enquanto o modo demo está ligado.
const DemoActorID = "demo"

// Claims são as claims de um access token do Supabase.
type Claims struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"-"`
	jwt.RegisteredClaims
}

// UserID retorna o sub do token, ou vazio.
func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// Me é a resposta da tela Account.
type Me struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Environment string `json:"environment"`
	DemoMode    bool   `json:"demo_mode"`
}

type claimsContextKey struct{}

// ContextWithClaims guarda as claims do usuário autenticado no contexto da requisição.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext retorna as claims da requisição, ou nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*Claims)
	return claims
}
