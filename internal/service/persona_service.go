package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"personas/internal/apierror"
	"personas/internal/dto"
	"personas/internal/model"
	"personas/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var (
	errPersonaNoEncontrada = apierror.NotFound("Persona no encontrada")
	errRolInexistente      = apierror.BadRequest("El rol especificado no existe")
)

// Paginacion requests one page of the persona listing. Out of range values
// are clamped: Page to >= 1, Limit to 1..100 (0 means the default of 10).
type Paginacion struct {
	Page  int
	Limit int
}

// PersonaService defines business operations for personas.
type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error)
	// Listar returns every persona, newest first, or a single page when pag is non-nil.
	Listar(ctx context.Context, pag *Paginacion) (*dto.PersonaListResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.PersonaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error)
	Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error)
	// Buscar matches term as a case-insensitive substring of nombre or apellido.
	Buscar(ctx context.Context, term string) ([]dto.PersonaResponse, error)
	ListarPorRol(ctx context.Context, rol string) (*dto.PersonasPorRolResponse, error)
	Contar(ctx context.Context) (int64, error)
	Estadisticas(ctx context.Context) (*dto.PersonaStatsResponse, error)
}

type personaService struct {
	personas repository.PersonaRepository
	roles    repository.RolRepository
}

func NewPersonaService(personas repository.PersonaRepository, roles repository.RolRepository) PersonaService {
	return &personaService{personas: personas, roles: roles}
}

func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := insertarPersona(ctx, s.personas, s.roles, req, "Ya existe una persona con este email")
	if err != nil {
		return nil, err
	}
	resp := mapPersona(*p)
	return &resp, nil
}

// insertarPersona runs the checks shared by create and register, inserts the
// row and re-reads it with its rol. Nothing is written when a check fails.
func insertarPersona(
	ctx context.Context,
	personas repository.PersonaRepository,
	roles repository.RolRepository,
	req dto.CrearPersonaRequest,
	msgDuplicado string,
) (*model.Persona, error) {
	exists, err := personas.CorreoExists(ctx, req.Correo, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Conflict(msgDuplicado)
	}
	if err := checkRol(ctx, roles, req.RolID.Uint()); err != nil {
		return nil, err
	}

	p := &model.Persona{
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		RolID:      req.RolID.Uint(),
		Telefono:   optional(req.Telefono),
		Direccion:  optional(req.Direccion),
	}
	if f := optional(req.FechaNacimiento); f != nil {
		t, err := dto.ParseFecha(*f)
		if err != nil {
			return nil, apierror.BadRequest("Fecha de nacimiento inválida")
		}
		p.FechaNacimiento = &t
	}

	if err := personas.Create(ctx, p); err != nil {
		return nil, err
	}
	return personas.FindByID(ctx, p.ID)
}

func checkRol(ctx context.Context, roles repository.RolRepository, id uint) error {
	if _, err := roles.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errRolInexistente
		}
		return err
	}
	return nil
}

func (s *personaService) Listar(ctx context.Context, pag *Paginacion) (*dto.PersonaListResponse, error) {
	if pag == nil {
		list, err := s.personas.List(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.PersonaListResponse{
			Personas:    mapPersonas(list),
			Total:       int64(len(list)),
			TotalPages:  1,
			CurrentPage: 1,
		}, nil
	}

	page := max(pag.Page, 1)
	limit := pag.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = min(max(limit, 1), maxPageLimit)

	total, err := s.personas.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.personas.ListPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &dto.PersonaListResponse{
		Personas:    mapPersonas(list),
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

func (s *personaService) ObtenerPorID(ctx context.Context, id uint) (*dto.PersonaResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPersona(*p)
	return &resp, nil
}

func (s *personaService) find(ctx context.Context, id uint) (*model.Persona, error) {
	p, err := s.personas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPersonaNoEncontrada
		}
		return nil, err
	}
	return p, nil
}

func (s *personaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		resp := mapPersona(*current)
		return &resp, nil
	}

	fields := make(map[string]any)
	if req.Nombre != nil {
		fields["nombre"] = *req.Nombre
	}
	if req.Apellido != nil {
		fields["apellido"] = *req.Apellido
	}
	if req.Correo != nil {
		if *req.Correo != current.Correo {
			exists, err := s.personas.CorreoExists(ctx, *req.Correo, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apierror.Conflict("Ya existe otra persona con este email")
			}
		}
		fields["correo"] = *req.Correo
	}
	if req.Contrasena != nil {
		fields["contrasena"] = *req.Contrasena
	}
	if req.RolID != nil {
		if err := checkRol(ctx, s.roles, req.RolID.Uint()); err != nil {
			return nil, err
		}
		fields["rol_id"] = req.RolID.Uint()
	}
	if req.Telefono != nil {
		fields["telefono"] = optional(req.Telefono)
	}
	if req.Direccion != nil {
		fields["direccion"] = optional(req.Direccion)
	}
	if req.FechaNacimiento != nil {
		var fecha *time.Time
		if f := optional(req.FechaNacimiento); f != nil {
			t, err := dto.ParseFecha(*f)
			if err != nil {
				return nil, apierror.BadRequest("Fecha de nacimiento inválida")
			}
			fecha = &t
		}
		fields["fecha_nacimiento"] = fecha
	}

	ok, err := s.personas.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(http.StatusInternalServerError, "Error al actualizar la persona")
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *personaService) Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	ok, err := s.personas.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(http.StatusInternalServerError, "Error al eliminar la persona")
	}
	return &dto.EliminadoResponse{ID: id, Deleted: true}, nil
}

func (s *personaService) Buscar(ctx context.Context, term string) ([]dto.PersonaResponse, error) {
	list, err := s.personas.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapPersonas(list), nil
}

func (s *personaService) ListarPorRol(ctx context.Context, rol string) (*dto.PersonasPorRolResponse, error) {
	list, err := s.personas.FindByRolNombre(ctx, rol)
	if err != nil {
		return nil, err
	}
	return &dto.PersonasPorRolResponse{Personas: mapPersonas(list), Total: len(list), Rol: rol}, nil
}

func (s *personaService) Contar(ctx context.Context) (int64, error) {
	return s.personas.Count(ctx)
}

func (s *personaService) Estadisticas(ctx context.Context) (*dto.PersonaStatsResponse, error) {
	c, err := s.personas.Conteos(ctx)
	if err != nil {
		return nil, err
	}
	porRol, err := s.roles.ConteoPersonas(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PersonaStatsResponse{
		Total:               c.Total,
		ConTelefono:         c.ConTelefono,
		ConDireccion:        c.ConDireccion,
		ConFechaNacimiento:  c.ConFechaNacimiento,
		PorcentajeCompletos: porcentaje(c.ConFechaNacimiento, c.Total),
		PorRol:              make([]dto.RolConteo, 0, len(porRol)),
	}
	for _, r := range porRol {
		resp.PorRol = append(resp.PorRol, dto.RolConteo{Rol: r.Nombre, Total: r.Total})
	}
	return resp, nil
}

// porcentaje returns part/total as a whole percentage, rounded half up.
func porcentaje(part, total int64) int64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 4).
		Round(0).
		IntPart()
}
