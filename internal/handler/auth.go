package handler

import (
	"net/http"

	"personas/internal/dto"
	"personas/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Registrar persona
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Datos de registro"
// @Success 201 {object} dto.Envelope{data=dto.PersonaResumen}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusCreated, "Usuario registrado exitosamente", resp)
}

// Login godoc
// @Summary Login de persona
// @Description Compara la contraseña en texto plano. No emite tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.Envelope{data=dto.LoginResponse}
// @Failure 401 {object} dto.Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Inicio de sesión exitoso", resp)
}

// Verify godoc
// @Summary Verificar credenciales
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Verify(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Credenciales válidas", resp)
}

// Usuarios godoc
// @Summary Listar usuarios
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /api/auth/users [get]
func (h *AuthHandler) Usuarios(c *gin.Context) {
	resp, err := h.svc.Usuarios(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Usuarios obtenidos exitosamente", resp)
}
