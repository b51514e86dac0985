package service

import (
	"strings"

	"personas/internal/dto"
	"personas/internal/model"
)

// mapPersona converts a model to a DTO response. The password never leaves here.
func mapPersona(p model.Persona) dto.PersonaResponse {
	r := dto.PersonaResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Apellido:  p.Apellido,
		Correo:    p.Correo,
		RolID:     p.RolID,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Rol != nil && p.Rol.ID != 0 {
		nombre := p.Rol.Nombre
		r.RolNombre = &nombre
	}
	if p.FechaNacimiento != nil {
		f := p.FechaNacimiento.Format(dto.FechaLayout)
		r.FechaNacimiento = &f
	}
	return r
}

func mapPersonas(list []model.Persona) []dto.PersonaResponse {
	out := make([]dto.PersonaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, mapPersona(p))
	}
	return out
}

func mapRol(r model.Rol) dto.RolResponse {
	return dto.RolResponse{ID: r.ID, Nombre: r.Nombre, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// optional turns a blank optional text into NULL.
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
