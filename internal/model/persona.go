package model

import "time"

// Persona is the primary managed entity. Contrasena is stored in plaintext
// (demo behaviour) and must never be serialized back to clients.
type Persona struct {
	ID         uint   `gorm:"primaryKey"`
	Nombre     string `gorm:"type:varchar(100);not null;index:idx_personas_nombre;index:idx_personas_nombre_apellido,priority:1"`
	Apellido   string `gorm:"type:varchar(100);not null;index:idx_personas_apellido;index:idx_personas_nombre_apellido,priority:2"`
	Correo     string `gorm:"type:varchar(100);uniqueIndex:uni_personas_correo;not null"`
	Contrasena string `gorm:"column:contrasena;type:varchar(255);not null"`
	RolID      uint   `gorm:"not null;index:idx_personas_rol_id"`
	Rol        *Rol   `gorm:"foreignKey:RolID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// Optional contact data
	Telefono        *string    `gorm:"type:varchar(20)"`
	FechaNacimiento *time.Time `gorm:"type:date"`
	Direccion       *string    `gorm:"type:varchar(500)"`

	CreatedAt time.Time `gorm:"index:idx_personas_created_at"`
	UpdatedAt time.Time
}

func (Persona) TableName() string { return "personas" }

// RolNombre returns the joined role name, or "" when the association was not loaded.
func (p *Persona) RolNombre() string {
	if p.Rol == nil {
		return ""
	}
	return p.Rol.Nombre
}
