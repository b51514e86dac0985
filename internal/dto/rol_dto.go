package dto

import (
	"strings"
	"time"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearRolRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50"`
}

type ActualizarRolRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50"`
}

// Normalize trims the name so the length rules apply to what gets stored.
func (r *CrearRolRequest) Normalize() { r.Nombre = strings.TrimSpace(r.Nombre) }

func (r *ActualizarRolRequest) Normalize() { r.Nombre = strings.TrimSpace(r.Nombre) }

// ── Response DTOs ─────────────────────────────────────────────────────────────

type RolResponse struct {
	ID        uint      `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RolListResponse struct {
	Roles []RolResponse `json:"roles"`
	Total int           `json:"total"`
}

type RolStatsItem struct {
	ID        uint      `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	Personas  int64     `json:"personas"`
}

type RolStatsResponse struct {
	Total int64          `json:"total"`
	Roles []RolStatsItem `json:"roles"`
}
