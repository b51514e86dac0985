package model

import "time"

// Rol is a named category referenced by personas. Deleting a rol that is still
// referenced is blocked by the personas.rol_id foreign key (ON DELETE RESTRICT).
type Rol struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(50);uniqueIndex:uni_roles_nombre;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Rol) TableName() string { return "roles" }
