package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Correo     string `json:"correo"     validate:"required,email"`
	Contrasena string `json:"contraseña" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PersonaResumen is the short form returned by register and verify.
type PersonaResumen struct {
	ID     uint   `json:"id"`
	Correo string `json:"correo"`
	Nombre string `json:"nombre"`
}

type LoginUser struct {
	ID       uint   `json:"id"`
	Correo   string `json:"correo"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

type UsuariosResponse struct {
	Users []PersonaResponse `json:"users"`
	Total int               `json:"total"`
}
