package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/gateway"
)

// AuthGateway implementa gateway.AuthGateway contra POST /api/Client/login.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string         `json:"token"`
	ClientID   int64          `json:"clientId"`
	Expiration entity.APITime `json:"expiration"`
}

// Login delega la verificación de credenciales en el backend y devuelve la
// sesión emitida. Un 401/403 upstream se reporta como ErrBackendLogin para que
// el handler lo distinga de un token de dashboard vencido.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*gateway.BackendSession, error) {
	var resp loginResponse
	err := g.client.postJSON(ctx, "", "/api/Client/login", loginRequest{Name: username, Password: password}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrBackendLogin
		}
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login sin token en la respuesta", domain.ErrBackendRejected)
	}
	return &gateway.BackendSession{
		Token:      resp.Token,
		ClientID:   resp.ClientID,
		Expiration: resp.Expiration,
	}, nil
}
