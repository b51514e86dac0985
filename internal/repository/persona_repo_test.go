package repository_test

import (
	"context"
	"testing"
	"time"

	"personas/internal/model"
	"personas/internal/repository"
	"personas/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func rolID(t *testing.T, db *gorm.DB, nombre string) uint {
	t.Helper()
	var r model.Rol
	require.NoError(t, db.Where("nombre = ?", nombre).First(&r).Error)
	return r.ID
}

func TestPersonaRepo_FindByIDLoadsRol(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	p, err := repo.FindByCorreo(ctx, "admin@test.com")
	require.NoError(t, err)
	assert.Equal(t, "admin123", p.Contrasena)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Nombre)
	assert.Equal(t, "admin", got.RolNombre())

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonaRepo_CorreoExists(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	p, err := repo.FindByCorreo(ctx, "juan.perez@email.com")
	require.NoError(t, err)

	exists, err := repo.CorreoExists(ctx, "juan.perez@email.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CorreoExists(ctx, "juan.perez@email.com", p.ID)
	require.NoError(t, err)
	assert.False(t, exists, "own row is excluded")

	exists, err = repo.CorreoExists(ctx, "nadie@email.com", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPersonaRepo_CreateDuplicateCorreo(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)

	err := repo.Create(context.Background(), &model.Persona{
		Nombre: "Otro", Apellido: "Admin", Correo: "admin@test.com",
		Contrasena: "secreto", RolID: rolID(t, db, "admin"),
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPersonaRepo_CreateUnknownRol(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewPersonaRepository(db)

	err := repo.Create(context.Background(), &model.Persona{
		Nombre: "Sin", Apellido: "Rol", Correo: "sin.rol@email.com",
		Contrasena: "secreto", RolID: 42,
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestPersonaRepo_SearchByNameFoldsAccents(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Persona{
		Nombre: "ÁNGELA", Apellido: "NÚÑEZ", Correo: "angela@email.com",
		Contrasena: "secreto", RolID: rolID(t, db, "cliente"),
	}))

	for _, term := range []string{"ángela", "ÁnGeLa", "núñ", "marí"} {
		list, err := repo.SearchByName(ctx, term)
		require.NoError(t, err)
		assert.Len(t, list, 1, term)
	}
}

func TestPersonaRepo_SearchByName(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)

	list, err := repo.SearchByName(context.Background(), "mar")
	require.NoError(t, err)

	var nombres []string
	for _, p := range list {
		nombres = append(nombres, p.Nombre+" "+p.Apellido)
	}
	// "María González" by nombre, "Ana Martínez" by apellido; ordered by nombre
	assert.Equal(t, []string{"Ana Martínez", "María González"}, nombres)

	list, err = repo.SearchByName(context.Background(), "100%")
	require.NoError(t, err)
	assert.Empty(t, list, "wildcards match literally")
}

func TestPersonaRepo_FindByRolNombre(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	clientes, err := repo.FindByRolNombre(ctx, "cliente")
	require.NoError(t, err)
	assert.Len(t, clientes, 4)
	for _, p := range clientes {
		assert.Equal(t, "cliente", p.RolNombre())
	}

	empleados, err := repo.FindByRolNombre(ctx, "empleado")
	require.NoError(t, err)
	assert.Empty(t, empleados)
}

func TestPersonaRepo_ListOrderAndPage(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Rol{Nombre: "cliente"}).Error)
	rid := rolID(t, db, "cliente")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, nombre := range []string{"Primera", "Segunda", "Tercera"} {
		require.NoError(t, repo.Create(ctx, &model.Persona{
			Nombre: nombre, Apellido: "Prueba", Correo: nombre + "@email.com",
			Contrasena: "secreto", RolID: rid, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Tercera", list[0].Nombre, "newest first")
	assert.Equal(t, "Primera", list[2].Nombre)

	page, err := repo.ListPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Primera", page[0].Nombre)
}

func TestPersonaRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	p, err := repo.FindByCorreo(ctx, "ana.martinez@email.com")
	require.NoError(t, err)

	tel := "555-0101"
	updated, err := repo.Update(ctx, p.ID, map[string]any{"telefono": &tel, "nombre": "Anita"})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.Nombre)
	require.NotNil(t, got.Telefono)
	assert.Equal(t, "555-0101", *got.Telefono)
	assert.Equal(t, "Martínez", got.Apellido, "untouched column")

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before-1, after)
}

func TestPersonaRepo_Conteos(t *testing.T) {
	db := testutil.NewSeededDB(t)
	repo := repository.NewPersonaRepository(db)
	ctx := context.Background()

	p, err := repo.FindByCorreo(ctx, "juan.perez@email.com")
	require.NoError(t, err)
	fecha := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	empty := ""
	_, err = repo.Update(ctx, p.ID, map[string]any{"fecha_nacimiento": &fecha, "direccion": &empty})
	require.NoError(t, err)

	c, err := repo.Conteos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.Total)
	assert.Equal(t, int64(1), c.ConFechaNacimiento)
	assert.Zero(t, c.ConDireccion, "blank text does not count")
	assert.Zero(t, c.ConTelefono)
}
