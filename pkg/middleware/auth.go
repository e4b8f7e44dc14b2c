package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/internal/usecases/authenticating"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/log"
)

// ActorSink acompanha os atores autenticados e a expiração do token de cada um.
type ActorSink interface {
	TrackActor(actor string, expiresAt time.Time)
}

// DemoFlag informa se o modo demo está ligado.
type DemoFlag interface {
	Enabled() bool
}

// AuthMiddleware valida o bearer token do Supabase, guarda as claims no contexto e
// define o ator da requisição (demo ou sub do token). O router aplica este middleware
// só nas rotas que não são públicas.
func AuthMiddleware(authService authenticating.Authenticator, actors ActorSink, demo DemoFlag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, r, err)
				return
			}

			actor := claims.UserID()
			if demo != nil && demo.Enabled() {
				actor = domain.DemoActorID
			}
			if actors != nil {
				var expiresAt time.Time
				if claims.ExpiresAt != nil {
					expiresAt = claims.ExpiresAt.Time
				}
				actors.TrackActor(actor, expiresAt)
			}

			ctx := domain.ContextWithClaims(r.Context(), claims)
			ctx = log.SetActor(ctx, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError responde 401/403 para falhas de autorização e 500 para o resto.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.UserID != "" {
		logger = logger.WithField("user_id", authErr.UserID)
	}

	if !authenticating.IsAuthorizationError(err) {
		logger.Error("Erro inesperado ao validar token")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar token", nil)
		return
	}

	code := apiErrors.ErrInvalidToken
	if authErr != nil {
		code = authErr.Code
	}
	logger.Warn("Token rejeitado")
	apiErrors.WriteError(w, code, "Invalid token", nil)
}
