package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"personas/internal/apierror"
	"personas/internal/dto"
	"personas/internal/model"
	"personas/internal/repository"

	"gorm.io/gorm"
)

// errCredenciales is returned for every failed credential check, whether the
// correo exists or not.
var errCredenciales = apierror.Unauthorized("Credenciales inválidas")

// AuthService is the demo authentication surface. Passwords are stored and
// compared in plain text and no session or token is issued.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.PersonaResumen, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Verify(ctx context.Context, req dto.LoginRequest) (*dto.PersonaResumen, error)
	Usuarios(ctx context.Context) (*dto.UsuariosResponse, error)
}

type authService struct {
	personas repository.PersonaRepository
	roles    repository.RolRepository
}

func NewAuthService(personas repository.PersonaRepository, roles repository.RolRepository) AuthService {
	return &authService{personas: personas, roles: roles}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.PersonaResumen, error) {
	p, err := insertarPersona(ctx, s.personas, s.roles, req, "El correo ya está registrado")
	if err != nil {
		return nil, err
	}
	return &dto.PersonaResumen{ID: p.ID, Correo: p.Correo, Nombre: p.Nombre}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		User: dto.LoginUser{
			ID:       p.ID,
			Correo:   p.Correo,
			Nombre:   p.Nombre,
			Apellido: p.Apellido,
			Rol:      p.RolNombre(),
		},
	}, nil
}

func (s *authService) Verify(ctx context.Context, req dto.LoginRequest) (*dto.PersonaResumen, error) {
	p, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.PersonaResumen{ID: p.ID, Correo: p.Correo, Nombre: p.Nombre}, nil
}

func (s *authService) authenticate(ctx context.Context, req dto.LoginRequest) (*model.Persona, error) {
	p, err := s.personas.FindByCorreo(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCredenciales
		}
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(p.Contrasena), []byte(req.Contrasena)) != 1 {
		return nil, errCredenciales
	}
	return p, nil
}

func (s *authService) Usuarios(ctx context.Context) (*dto.UsuariosResponse, error) {
	list, err := s.personas.List(ctx)
	if err != nil {
		return nil, err
	}
	users := mapPersonas(list)
	return &dto.UsuariosResponse{Users: users, Total: len(users)}, nil
}
