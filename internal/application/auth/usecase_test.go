package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/gateway"
	pkgjwt "github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

// fakeAuthGateway respuesta fija o error inyectable.
type fakeAuthGateway struct {
	session *gateway.BackendSession
	err     error
}

func (f *fakeAuthGateway) Login(ctx context.Context, username, password string) (*gateway.BackendSession, error) {
	return f.session, f.err
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:     "secret-de-prueba",
		ExpMinutes: 60,
		Issuer:     "inventario-dashboard-test",
	}
}

func TestLogin_EmiteTokenConClaimsDelBackend(t *testing.T) {
	fake := &fakeAuthGateway{
		session: &gateway.BackendSession{Token: "tok-upstream", ClientID: 7},
	}
	uc := auth.NewUseCase(fake, testJWTConfig())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Name: "tienda1", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ClientID)
	require.NotEmpty(t, out.Token)

	// El token del dashboard debe transportar la identidad del backend.
	clientID, backendToken, err := pkgjwt.Parse("secret-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), clientID)
	assert.Equal(t, "tok-upstream", backendToken)
}

func TestLogin_CredencialesIncompletas(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthGateway{}, testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Name: "tienda1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password vacío debe rechazarse sin ir al backend")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ErrorDelBackendSePropaga(t *testing.T) {
	uc := auth.NewUseCase(&fakeAuthGateway{err: domain.ErrBackendLogin}, testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Name: "tienda1", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrBackendLogin)
}
