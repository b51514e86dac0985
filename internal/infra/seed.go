package infra

import (
	"context"
	"fmt"

	"personas/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRoles are created on every start; existing rows are left untouched.
var DefaultRoles = []string{"admin", "cliente", "empleado"}

type samplePersona struct {
	nombre, apellido, correo, contrasena, rol string
}

var samplePersonas = []samplePersona{
	{"Admin", "Sistema", "admin@test.com", "admin123", "admin"},
	{"Juan", "Pérez", "juan.perez@email.com", "123456", "cliente"},
	{"María", "González", "maria.gonzalez@email.com", "maria123", "cliente"},
	{"Carlos", "Rodríguez", "carlos.rodriguez@email.com", "carlos123", "cliente"},
	{"Ana", "Martínez", "ana.martinez@email.com", "ana123", "cliente"},
}

// Seed inserts the default roles and the demo personas. It is idempotent:
// conflicting rows (same rol name / same correo) are skipped.
func Seed(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	for _, nombre := range DefaultRoles {
		rol := model.Rol{Nombre: nombre}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rol).Error; err != nil {
			return fmt.Errorf("seed rol %q: %w", nombre, err)
		}
	}

	roleIDs := make(map[string]uint, len(DefaultRoles))
	var roles []model.Rol
	if err := tx.Where("nombre IN ?", DefaultRoles).Find(&roles).Error; err != nil {
		return fmt.Errorf("seed: load roles: %w", err)
	}
	for _, r := range roles {
		roleIDs[r.Nombre] = r.ID
	}

	inserted := 0
	for _, s := range samplePersonas {
		rolID, ok := roleIDs[s.rol]
		if !ok {
			continue
		}
		p := model.Persona{
			Nombre:     s.nombre,
			Apellido:   s.apellido,
			Correo:     s.correo,
			Contrasena: s.contrasena,
			RolID:      rolID,
		}
		res := tx.Omit("Rol").Clauses(clause.OnConflict{DoNothing: true}).Create(&p)
		if res.Error != nil {
			return fmt.Errorf("seed persona %q: %w", s.correo, res.Error)
		}
		inserted += int(res.RowsAffected)
	}

	log.Info().Int("roles", len(DefaultRoles)).Int("personas_inserted", inserted).Msg("seed data applied")
	return nil
}
