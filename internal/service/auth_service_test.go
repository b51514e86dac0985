package service

import (
	"context"
	"net/http"
	"testing"

	"personas/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthSvc(t *testing.T) AuthService {
	t.Helper()
	roles := newStubRolRepo("admin", "cliente")
	svc := NewAuthService(newStubPersonaRepo(roles), roles)
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Juan", Apellido: "Pérez", Correo: "juan@x.com", Contrasena: "123456", RolID: 2,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc := newAuthSvc(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Correo: "juan@x.com", Contrasena: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", resp.Message)
	assert.Equal(t, dto.LoginUser{ID: 1, Correo: "juan@x.com", Nombre: "Juan", Apellido: "Pérez", Rol: "cliente"}, resp.User)
}

func TestAuthService_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, dto.LoginRequest{Correo: "juan@x.com", Contrasena: "nope12"})
	_, unknown := svc.Login(ctx, dto.LoginRequest{Correo: "nadie@x.com", Contrasena: "123456"})
	_, verifyWrong := svc.Verify(ctx, dto.LoginRequest{Correo: "juan@x.com", Contrasena: "nope12"})

	for _, err := range []error{wrongPass, unknown, verifyWrong} {
		appErr := assertAppError(t, err, http.StatusUnauthorized)
		assert.Equal(t, "Credenciales inválidas", appErr.Message)
	}
}

func TestAuthService_VerifyAndUsuarios(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	v, err := svc.Verify(ctx, dto.LoginRequest{Correo: "juan@x.com", Contrasena: "123456"})
	require.NoError(t, err)
	assert.Equal(t, &dto.PersonaResumen{ID: 1, Correo: "juan@x.com", Nombre: "Juan"}, v)

	users, err := svc.Usuarios(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users.Total)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newAuthSvc(t)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Juan", Apellido: "Otro", Correo: "juan@x.com", Contrasena: "123456", RolID: 1,
	})
	appErr := assertAppError(t, err, http.StatusConflict)
	assert.Equal(t, "El correo ya está registrado", appErr.Message)
}
