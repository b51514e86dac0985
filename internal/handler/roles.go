package handler

import (
	"net/http"

	"personas/internal/dto"
	"personas/internal/service"

	"github.com/gin-gonic/gin"
)

type RolesHandler struct{ svc service.RolService }

func NewRolesHandler(svc service.RolService) *RolesHandler { return &RolesHandler{svc: svc} }

// Crear godoc
// @Summary Crear rol
// @Tags roles
// @Accept json
// @Produce json
// @Param body body dto.CrearRolRequest true "Rol"
// @Success 201 {object} dto.Envelope{data=dto.RolResponse}
// @Failure 409 {object} dto.Envelope
// @Router /api/roles [post]
func (h *RolesHandler) Crear(c *gin.Context) {
	var req dto.CrearRolRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusCreated, "Rol creado exitosamente", resp)
}

// Listar godoc
// @Summary Listar roles
// @Tags roles
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /api/roles [get]
func (h *RolesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Roles obtenidos exitosamente", resp)
}

// ObtenerPorID godoc
// @Summary Obtener rol
// @Tags roles
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /api/roles/{id} [get]
func (h *RolesHandler) ObtenerPorID(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Rol obtenido exitosamente", resp)
}

// Actualizar godoc
// @Summary Actualizar rol
// @Tags roles
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param body body dto.ActualizarRolRequest true "Rol"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/roles/{id} [put]
func (h *RolesHandler) Actualizar(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.ActualizarRolRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Rol actualizado exitosamente", resp)
}

// Eliminar godoc
// @Summary Eliminar rol
// @Description Falla con 400 si alguna persona todavía usa el rol.
// @Tags roles
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} dto.Envelope{data=dto.EliminadoResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /api/roles/{id} [delete]
func (h *RolesHandler) Eliminar(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Rol eliminado exitosamente", resp)
}

// Estadisticas godoc
// @Summary Estadísticas de roles
// @Tags roles
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /api/roles/stats [get]
func (h *RolesHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Estadísticas de roles obtenidas exitosamente", resp)
}
