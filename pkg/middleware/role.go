package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

// RoleServiceRole é o papel das chamadas de serviço do Supabase (cron, automações)
const RoleServiceRole = "service_role"

// RoleMiddleware restringe o acesso com base no papel do token
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims := domain.ClaimsFromContext(r.Context())
			if userClaims == nil {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID(), userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DevOnly bloqueia a rota fora do ambiente de desenvolvimento
func DevOnly(isDevelopment bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isDevelopment {
				apiErrors.WriteError(w, apiErrors.ErrDemoUnavailable, "Disponível apenas em desenvolvimento", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
