package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearPersonaRequest struct {
	Nombre          string   `json:"nombre"           validate:"required,min=2,max=100"`
	Apellido        string   `json:"apellido"         validate:"required,min=2,max=100"`
	Correo          string   `json:"correo"           validate:"required,email,max=100"`
	Contrasena      string   `json:"contraseña"       validate:"required,min=6,max=255"`
	RolID           FlexUint `json:"rol_id"           validate:"required,gt=0"`
	Telefono        *string  `json:"telefono"         validate:"omitempty,max=20"`
	FechaNacimiento *string  `json:"fecha_nacimiento" validate:"omitempty,fecha_pasada"`
	Direccion       *string  `json:"direccion"        validate:"omitempty,max=500"`
}

// RegisterRequest is the demo sign-up payload; it carries the same fields as a create.
type RegisterRequest = CrearPersonaRequest

// ActualizarPersonaRequest only changes the fields that are present (non-nil).
type ActualizarPersonaRequest struct {
	Nombre          *string   `json:"nombre"           validate:"omitnil,min=2,max=100"`
	Apellido        *string   `json:"apellido"         validate:"omitnil,min=2,max=100"`
	Correo          *string   `json:"correo"           validate:"omitnil,email,max=100"`
	Contrasena      *string   `json:"contraseña"       validate:"omitnil,min=6,max=255"`
	RolID           *FlexUint `json:"rol_id"           validate:"omitnil,gt=0"`
	Telefono        *string   `json:"telefono"         validate:"omitempty,max=20"`
	FechaNacimiento *string   `json:"fecha_nacimiento" validate:"omitempty,fecha_pasada"`
	Direccion       *string   `json:"direccion"        validate:"omitempty,max=500"`
}

// IsEmpty reports whether no field was supplied.
func (r ActualizarPersonaRequest) IsEmpty() bool {
	return r.Nombre == nil && r.Apellido == nil && r.Correo == nil && r.Contrasena == nil &&
		r.RolID == nil && r.Telefono == nil && r.FechaNacimiento == nil && r.Direccion == nil
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ListarPersonasQuery keeps page and limit as raw strings: unparsable values
// fall back to the defaults instead of failing the request.
type ListarPersonasQuery struct {
	Search string `form:"search"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

type SearchQuery struct {
	Term string `form:"term" validate:"required,min=1"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PersonaResponse struct {
	ID              uint      `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	Correo          string    `json:"correo"`
	RolID           uint      `json:"rol_id"`
	RolNombre       *string   `json:"rol_nombre"`
	Telefono        *string   `json:"telefono"`
	FechaNacimiento *string   `json:"fecha_nacimiento"`
	Direccion       *string   `json:"direccion"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PersonaListResponse struct {
	Personas    []PersonaResponse `json:"personas"`
	Total       int64             `json:"total"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	HasNext     bool              `json:"hasNext"`
	HasPrev     bool              `json:"hasPrev"`
}

// PersonaBusquedaResponse answers both GET /personas?search= (Search set) and
// GET /personas/search?term= (SearchTerm set).
type PersonaBusquedaResponse struct {
	Personas   []PersonaResponse `json:"personas"`
	Total      int               `json:"total"`
	Search     string            `json:"search,omitempty"`
	SearchTerm string            `json:"searchTerm,omitempty"`
}

type PersonasPorRolResponse struct {
	Personas []PersonaResponse `json:"personas"`
	Total    int               `json:"total"`
	Rol      string            `json:"rol"`
}

type RolConteo struct {
	Rol   string `json:"rol"`
	Total int64  `json:"total"`
}

type PersonaStatsResponse struct {
	Total               int64       `json:"total"`
	ConTelefono         int64       `json:"conTelefono"`
	ConDireccion        int64       `json:"conDireccion"`
	ConFechaNacimiento  int64       `json:"conFechaNacimiento"`
	PorcentajeCompletos int64       `json:"porcentajeCompletos"`
	PorRol              []RolConteo `json:"porRol"`
}
