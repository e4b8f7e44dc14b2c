package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/config"
	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
)

// AuthenticatedRole é o papel que o Supabase atribui a sessões logadas.
const AuthenticatedRole = "authenticated"

// DemoFlag informa se o modo demo está ligado.
type DemoFlag interface {
	Enabled() bool
}

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	Me(ctx context.Context) (*domain.Me, error)
}

type Service struct {
	cfg  *config.Config
	demo DemoFlag
}

func NewService(cfg *config.Config, demo DemoFlag) Authenticator {
	return &Service{
		cfg:  cfg,
		demo: demo,
	}
}

// ValidateToken valida um access token do Supabase (HS256) e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Supabase.JWTSecret), nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			authErr := NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
			if claims, ok := tokenClaims(token); ok {
				authErr.UserID = claims.UserID()
			}
			return nil, authErr
		}
		logrus.WithError(err).Debug("auth: token rejeitado")
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || strings.TrimSpace(claims.UserID()) == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}

	if claims.Role == "" {
		claims.Role = AuthenticatedRole
	}
	claims.AccessToken = tokenString

	return claims, nil
}

// tokenClaims lê as claims de um token já verificado mas rejeitado na validação.
func tokenClaims(token *jwt.Token) (*domain.Claims, bool) {
	if token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(*domain.Claims)
	return claims, ok
}

// Me descreve o usuário da requisição e o ambiente.
func (s *Service) Me(ctx context.Context) (*domain.Me, error) {
	claims := domain.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	return &domain.Me{
		UserID:      claims.UserID(),
		Email:       claims.Email,
		Role:        claims.Role,
		Environment: s.cfg.App.Env,
		DemoMode:    s.demo != nil && s.demo.Enabled(),
	}, nil
}
