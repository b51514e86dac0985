package repository

import (
	"context"

	"personas/internal/model"

	"gorm.io/gorm"
)

// RolConteo is the number of personas referencing one rol.
type RolConteo struct {
	RolID  uint
	Nombre string
	Total  int64
}

// RolRepository defines CRUD operations for Rol.
// Lookups return gorm.ErrRecordNotFound when the row does not exist.
type RolRepository interface {
	Create(ctx context.Context, r *model.Rol) error
	List(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id uint) (*model.Rol, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Rol, error)
	NombreExists(ctx context.Context, nombre string, excludeID uint) (bool, error)
	UpdateNombre(ctx context.Context, id uint, nombre string) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	ConteoPersonas(ctx context.Context) ([]RolConteo, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(ctx context.Context, id uint) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) FindByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) NombreExists(ctx context.Context, nombre string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Rol{}).Where("nombre = ?", nombre)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *rolRepo) UpdateNombre(ctx context.Context, id uint, nombre string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Rol{ID: id}).Update("nombre", nombre)
	return res.RowsAffected > 0, res.Error
}

func (r *rolRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Rol{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *rolRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Rol{}).Count(&count).Error
	return count, err
}

// ConteoPersonas returns every rol (including unused ones) with its persona count,
// ordered by rol name.
func (r *rolRepo) ConteoPersonas(ctx context.Context) ([]RolConteo, error) {
	var rows []RolConteo
	err := r.db.WithContext(ctx).
		Model(&model.Rol{}).
		Select("roles.id AS rol_id, roles.nombre AS nombre, COUNT(personas.id) AS total").
		Joins("LEFT JOIN personas ON personas.rol_id = roles.id").
		Group("roles.id, roles.nombre").
		Order("roles.nombre ASC").
		Scan(&rows).Error
	return rows, err
}
