package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"personas/internal/apierror"
	"personas/internal/dto"
	"personas/internal/model"
	"personas/internal/repository"

	"gorm.io/gorm"
)

var errRolNoEncontrado = apierror.NotFound("Rol no encontrado")

// RolService defines business operations for roles.
type RolService interface {
	Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error)
	Listar(ctx context.Context) (*dto.RolListResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.RolResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarRolRequest) (*dto.RolResponse, error)
	// Eliminar does not look for personas using the rol; the foreign key
	// rejects the delete and that surfaces as an invalid reference.
	Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error)
	Estadisticas(ctx context.Context) (*dto.RolStatsResponse, error)
}

type rolService struct {
	repo repository.RolRepository
}

func NewRolService(repo repository.RolRepository) RolService {
	return &rolService{repo: repo}
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.BadRequest("El nombre del rol es requerido")
	}
	exists, err := s.repo.NombreExists(ctx, nombre, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Conflict("Ya existe un rol con este nombre")
	}

	rol := &model.Rol{Nombre: nombre}
	if err := s.repo.Create(ctx, rol); err != nil {
		return nil, err
	}
	resp := mapRol(*rol)
	return &resp, nil
}

func (s *rolService) Listar(ctx context.Context) (*dto.RolListResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, mapRol(r))
	}
	return &dto.RolListResponse{Roles: out, Total: len(out)}, nil
}

func (s *rolService) ObtenerPorID(ctx context.Context, id uint) (*dto.RolResponse, error) {
	rol, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapRol(*rol)
	return &resp, nil
}

func (s *rolService) find(ctx context.Context, id uint) (*model.Rol, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRolNoEncontrado
		}
		return nil, err
	}
	return rol, nil
}

func (s *rolService) Actualizar(ctx context.Context, id uint, req dto.ActualizarRolRequest) (*dto.RolResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.BadRequest("El nombre del rol es requerido")
	}
	rol, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if nombre != rol.Nombre {
		exists, err := s.repo.NombreExists(ctx, nombre, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflict("Ya existe otro rol con este nombre")
		}
	}

	ok, err := s.repo.UpdateNombre(ctx, id, nombre)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(http.StatusInternalServerError, "Error al actualizar el rol")
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *rolService) Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(http.StatusInternalServerError, "Error al eliminar el rol")
	}
	return &dto.EliminadoResponse{ID: id, Deleted: true}, nil
}

func (s *rolService) Estadisticas(ctx context.Context) (*dto.RolStatsResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	conteos, err := s.repo.ConteoPersonas(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]int64, len(conteos))
	for _, c := range conteos {
		porID[c.RolID] = c.Total
	}

	items := make([]dto.RolStatsItem, 0, len(roles))
	for _, r := range roles {
		items = append(items, dto.RolStatsItem{
			ID:        r.ID,
			Nombre:    r.Nombre,
			CreatedAt: r.CreatedAt,
			Personas:  porID[r.ID],
		})
	}
	return &dto.RolStatsResponse{Total: int64(len(roles)), Roles: items}, nil
}
