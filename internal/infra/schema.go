package infra

import (
	"fmt"

	"personas/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the schema. PostgreSQL gets hand-written idempotent DDL so
// constraint names, FK actions and indexes are exactly what we expect; SQLite
// (local development and tests) uses AutoMigrate from the model tags.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return db.AutoMigrate(&model.Rol{}, &model.Persona{})
	}

	statements := []struct{ descr, sql string }{
		{"create roles", `
CREATE TABLE IF NOT EXISTS roles (
  id         SERIAL PRIMARY KEY,
  nombre     VARCHAR(50)  NOT NULL,
  created_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
  CONSTRAINT uni_roles_nombre UNIQUE (nombre)
)`},
		{"create personas", `
CREATE TABLE IF NOT EXISTS personas (
  id               SERIAL PRIMARY KEY,
  nombre           VARCHAR(100) NOT NULL,
  apellido         VARCHAR(100) NOT NULL,
  correo           VARCHAR(100) NOT NULL,
  contrasena       VARCHAR(255) NOT NULL,
  rol_id           INT          NOT NULL,
  telefono         VARCHAR(20),
  fecha_nacimiento DATE,
  direccion        VARCHAR(500),
  created_at       TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ  NOT NULL DEFAULT now(),
  CONSTRAINT uni_personas_correo UNIQUE (correo),
  CONSTRAINT fk_personas_rol FOREIGN KEY (rol_id)
    REFERENCES roles (id) ON UPDATE CASCADE ON DELETE RESTRICT
)`},
		{"idx_personas_nombre", `CREATE INDEX IF NOT EXISTS idx_personas_nombre ON personas (nombre)`},
		{"idx_personas_apellido", `CREATE INDEX IF NOT EXISTS idx_personas_apellido ON personas (apellido)`},
		{"idx_personas_nombre_apellido", `CREATE INDEX IF NOT EXISTS idx_personas_nombre_apellido ON personas (nombre, apellido)`},
		{"idx_personas_rol_id", `CREATE INDEX IF NOT EXISTS idx_personas_rol_id ON personas (rol_id)`},
		{"idx_personas_created_at", `CREATE INDEX IF NOT EXISTS idx_personas_created_at ON personas (created_at)`},
	}
	for _, s := range statements {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("migrate %q: %w", s.descr, err)
		}
	}
	return nil
}
