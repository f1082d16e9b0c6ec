// Package auth contiene el caso de uso de login del dashboard.
package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/gateway"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase delega la verificación de credenciales en el backend y emite el
// token de sesión propio del dashboard. El token del backend viaja dentro de
// los claims: cada lectura upstream se hace a nombre del cliente, sin estado
// de identidad en el servidor.
type UseCase struct {
	authGateway gateway.AuthGateway
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(authGateway gateway.AuthGateway, jwtCfg JWTConfig) *UseCase {
	return &UseCase{authGateway: authGateway, jwtCfg: jwtCfg}
}

// Login autentica contra el backend y devuelve el token del dashboard.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	session, err := uc.authGateway.Login(ctx, in.Name, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ClientID, session.Token, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ClientID:  session.ClientID,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}, nil
}
