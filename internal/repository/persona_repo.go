package repository

import (
	"context"
	"strings"

	"personas/internal/model"

	"gorm.io/gorm"
)

// PersonaConteos aggregates how many personas have each optional field filled in.
type PersonaConteos struct {
	Total              int64
	ConTelefono        int64
	ConDireccion       int64
	ConFechaNacimiento int64
}

// PersonaRepository defines persistence operations for Persona. Every read
// loads the associated Rol with a LEFT JOIN unless stated otherwise.
type PersonaRepository interface {
	Create(ctx context.Context, p *model.Persona) error
	FindByID(ctx context.Context, id uint) (*model.Persona, error)
	// FindByCorreo returns the row including its password, for credential checks.
	FindByCorreo(ctx context.Context, correo string) (*model.Persona, error)
	CorreoExists(ctx context.Context, correo string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]model.Persona, error)
	ListPage(ctx context.Context, limit, offset int) ([]model.Persona, error)
	SearchByName(ctx context.Context, term string) ([]model.Persona, error)
	// FindByRolNombre uses an INNER JOIN, so personas without a matching rol are excluded.
	FindByRolNombre(ctx context.Context, nombre string) ([]model.Persona, error)
	Update(ctx context.Context, id uint, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	Conteos(ctx context.Context) (PersonaConteos, error)
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) withRol(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Rol")
}

func (r *personaRepo) Create(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Omit("Rol").Create(p).Error
}

func (r *personaRepo) FindByID(ctx context.Context, id uint) (*model.Persona, error) {
	var p model.Persona
	if err := r.withRol(ctx).Where("personas.id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) FindByCorreo(ctx context.Context, correo string) (*model.Persona, error) {
	var p model.Persona
	if err := r.withRol(ctx).Where("personas.correo = ?", correo).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) CorreoExists(ctx context.Context, correo string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Persona{}).Where("correo = ?", correo)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *personaRepo) List(ctx context.Context) ([]model.Persona, error) {
	var list []model.Persona
	err := r.withRol(ctx).Order("personas.created_at DESC").Order("personas.id DESC").Find(&list).Error
	return list, err
}

func (r *personaRepo) ListPage(ctx context.Context, limit, offset int) ([]model.Persona, error) {
	var list []model.Persona
	err := r.withRol(ctx).
		Order("personas.created_at DESC").Order("personas.id DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *personaRepo) SearchByName(ctx context.Context, term string) ([]model.Persona, error) {
	var list []model.Persona
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	err := r.withRol(ctx).
		Where(`LOWER(personas.nombre) LIKE ? ESCAPE '\' OR LOWER(personas.apellido) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("personas.nombre ASC").Order("personas.apellido ASC").
		Find(&list).Error
	return list, err
}

func (r *personaRepo) FindByRolNombre(ctx context.Context, nombre string) ([]model.Persona, error) {
	var list []model.Persona
	err := r.db.WithContext(ctx).
		InnerJoins("Rol", r.db.Where(&model.Rol{Nombre: nombre})).
		Order("personas.nombre ASC").Order("personas.apellido ASC").
		Find(&list).Error
	return list, err
}

func (r *personaRepo) Update(ctx context.Context, id uint, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Persona{ID: id}).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *personaRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Persona{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *personaRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Persona{}).Count(&count).Error
	return count, err
}

func (r *personaRepo) Conteos(ctx context.Context) (PersonaConteos, error) {
	var c PersonaConteos
	err := r.db.WithContext(ctx).
		Model(&model.Persona{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN telefono IS NOT NULL AND telefono <> '' THEN 1 END) AS con_telefono,
			COUNT(CASE WHEN direccion IS NOT NULL AND direccion <> '' THEN 1 END) AS con_direccion,
			COUNT(fecha_nacimiento) AS con_fecha_nacimiento`).
		Scan(&c).Error
	return c, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so the term matches literally.
func escapeLike(s string) string { return likeEscaper.Replace(s) }
