package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"personas/internal/model"
	"personas/internal/repository"

	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubRolRepo struct {
	roles  map[uint]*model.Rol
	nextID uint
}

func newStubRolRepo(nombres ...string) *stubRolRepo {
	r := &stubRolRepo{roles: make(map[uint]*model.Rol)}
	for _, n := range nombres {
		_ = r.Create(context.Background(), &model.Rol{Nombre: n})
	}
	return r
}

func (r *stubRolRepo) Create(_ context.Context, rol *model.Rol) error {
	for _, existing := range r.roles {
		if existing.Nombre == rol.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	rol.ID = r.nextID
	rol.CreatedAt = time.Now()
	rol.UpdatedAt = rol.CreatedAt
	cp := *rol
	r.roles[rol.ID] = &cp
	return nil
}

func (r *stubRolRepo) List(_ context.Context) ([]model.Rol, error) {
	out := make([]model.Rol, 0, len(r.roles))
	for _, rol := range r.roles {
		out = append(out, *rol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubRolRepo) FindByID(_ context.Context, id uint) (*model.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rol
	return &cp, nil
}

func (r *stubRolRepo) FindByNombre(_ context.Context, nombre string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if rol.Nombre == nombre {
			cp := *rol
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) NombreExists(_ context.Context, nombre string, excludeID uint) (bool, error) {
	for _, rol := range r.roles {
		if rol.Nombre == nombre && rol.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRolRepo) UpdateNombre(_ context.Context, id uint, nombre string) (bool, error) {
	rol, ok := r.roles[id]
	if !ok {
		return false, nil
	}
	rol.Nombre = nombre
	return true, nil
}

func (r *stubRolRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.roles[id]; !ok {
		return false, nil
	}
	delete(r.roles, id)
	return true, nil
}

func (r *stubRolRepo) Count(_ context.Context) (int64, error) { return int64(len(r.roles)), nil }

func (r *stubRolRepo) ConteoPersonas(_ context.Context) ([]repository.RolConteo, error) {
	return nil, nil
}

type stubPersonaRepo struct {
	rows    map[uint]*model.Persona
	roles   *stubRolRepo
	nextID  uint
	creates int
	updates int
}

func newStubPersonaRepo(roles *stubRolRepo) *stubPersonaRepo {
	return &stubPersonaRepo{rows: make(map[uint]*model.Persona), roles: roles}
}

func (r *stubPersonaRepo) withRol(p model.Persona) *model.Persona {
	if rol, ok := r.roles.roles[p.RolID]; ok {
		cp := *rol
		p.Rol = &cp
	}
	return &p
}

func (r *stubPersonaRepo) Create(_ context.Context, p *model.Persona) error {
	r.creates++
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubPersonaRepo) FindByID(_ context.Context, id uint) (*model.Persona, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withRol(*p), nil
}

func (r *stubPersonaRepo) FindByCorreo(_ context.Context, correo string) (*model.Persona, error) {
	for _, p := range r.rows {
		if p.Correo == correo {
			return r.withRol(*p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPersonaRepo) CorreoExists(_ context.Context, correo string, excludeID uint) (bool, error) {
	for _, p := range r.rows {
		if p.Correo == correo && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPersonaRepo) sorted() []model.Persona {
	out := make([]model.Persona, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, *r.withRol(*p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *stubPersonaRepo) List(_ context.Context) ([]model.Persona, error) { return r.sorted(), nil }

func (r *stubPersonaRepo) ListPage(_ context.Context, limit, offset int) ([]model.Persona, error) {
	all := r.sorted()
	if offset >= len(all) {
		return []model.Persona{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *stubPersonaRepo) SearchByName(_ context.Context, term string) ([]model.Persona, error) {
	term = strings.ToLower(term)
	var out []model.Persona
	for _, p := range r.sorted() {
		if strings.Contains(strings.ToLower(p.Nombre), term) || strings.Contains(strings.ToLower(p.Apellido), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPersonaRepo) FindByRolNombre(_ context.Context, nombre string) ([]model.Persona, error) {
	var out []model.Persona
	for _, p := range r.sorted() {
		if p.RolNombre() == nombre {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPersonaRepo) Update(_ context.Context, id uint, fields map[string]any) (bool, error) {
	r.updates++
	p, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	for k, v := range fields {
		switch k {
		case "nombre":
			p.Nombre = v.(string)
		case "apellido":
			p.Apellido = v.(string)
		case "correo":
			p.Correo = v.(string)
		case "contrasena":
			p.Contrasena = v.(string)
		case "rol_id":
			p.RolID = v.(uint)
		case "telefono":
			p.Telefono = v.(*string)
		case "direccion":
			p.Direccion = v.(*string)
		case "fecha_nacimiento":
			p.FechaNacimiento = v.(*time.Time)
		}
	}
	return true, nil
}

func (r *stubPersonaRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *stubPersonaRepo) Count(_ context.Context) (int64, error) { return int64(len(r.rows)), nil }

func (r *stubPersonaRepo) Conteos(_ context.Context) (repository.PersonaConteos, error) {
	c := repository.PersonaConteos{Total: int64(len(r.rows))}
	for _, p := range r.rows {
		if p.Telefono != nil && *p.Telefono != "" {
			c.ConTelefono++
		}
		if p.Direccion != nil && *p.Direccion != "" {
			c.ConDireccion++
		}
		if p.FechaNacimiento != nil {
			c.ConFechaNacimiento++
		}
	}
	return c, nil
}
