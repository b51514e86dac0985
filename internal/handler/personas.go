package handler

import (
	"net/http"
	"strconv"
	"strings"

	"personas/internal/dto"
	"personas/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonasHandler struct{ svc service.PersonaService }

func NewPersonasHandler(svc service.PersonaService) *PersonasHandler {
	return &PersonasHandler{svc: svc}
}

// Crear godoc
// @Summary Crear persona
// @Tags personas
// @Accept json
// @Produce json
// @Param body body dto.CrearPersonaRequest true "Persona"
// @Success 201 {object} dto.Envelope{data=dto.PersonaResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/personas [post]
func (h *PersonasHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonaRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusCreated, "Persona creada exitosamente", resp)
}

// Listar godoc
// @Summary Listar personas
// @Description Sin parámetros devuelve todas (más recientes primero). Con search filtra por nombre o apellido; con page pagina.
// @Tags personas
// @Produce json
// @Param search query string false "Texto a buscar"
// @Param page query int false "Página (desde 1)"
// @Param limit query int false "Tamaño de página (1-100)"
// @Success 200 {object} dto.Envelope{data=dto.PersonaListResponse}
// @Router /api/personas [get]
func (h *PersonasHandler) Listar(c *gin.Context) {
	var q dto.ListarPersonasQuery
	if err := bindQuery(c, &q); err != nil {
		_ = c.Error(err)
		return
	}

	if term := strings.TrimSpace(q.Search); term != "" {
		personas, err := h.svc.Buscar(c.Request.Context(), term)
		if err != nil {
			_ = c.Error(err)
			return
		}
		ok(c, http.StatusOK, "Búsqueda completada", dto.PersonaBusquedaResponse{
			Personas: personas,
			Total:    len(personas),
			Search:   term,
		})
		return
	}

	var pag *service.Paginacion
	if q.Page != "" {
		pag = &service.Paginacion{Page: queryInt(q.Page), Limit: queryInt(q.Limit)}
	}
	resp, err := h.svc.Listar(c.Request.Context(), pag)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Personas obtenidas exitosamente", resp)
}

// ObtenerPorID godoc
// @Summary Obtener persona
// @Tags personas
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /api/personas/{id} [get]
func (h *PersonasHandler) ObtenerPorID(c *gin.Context) {
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
	ok(c, http.StatusOK, "Persona obtenida exitosamente", resp)
}

// Actualizar godoc
// @Summary Actualizar persona
// @Description Solo se modifican los campos enviados.
// @Tags personas
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param body body dto.ActualizarPersonaRequest true "Campos a modificar"
// @Success 200 {object} dto.Envelope{data=dto.PersonaResponse}
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/personas/{id} [put]
func (h *PersonasHandler) Actualizar(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.ActualizarPersonaRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Persona actualizada exitosamente", resp)
}

// Eliminar godoc
// @Summary Eliminar persona
// @Tags personas
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /api/personas/{id} [delete]
func (h *PersonasHandler) Eliminar(c *gin.Context) {
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
	ok(c, http.StatusOK, "Persona eliminada exitosamente", resp)
}

// Buscar godoc
// @Summary Buscar por nombre o apellido
// @Tags personas
// @Produce json
// @Param term query string true "Texto a buscar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /api/personas/search [get]
func (h *PersonasHandler) Buscar(c *gin.Context) {
	var q dto.SearchQuery
	if err := bindQuery(c, &q); err != nil {
		_ = c.Error(err)
		return
	}
	personas, err := h.svc.Buscar(c.Request.Context(), q.Term)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Búsqueda completada", dto.PersonaBusquedaResponse{
		Personas:   personas,
		Total:      len(personas),
		SearchTerm: q.Term,
	})
}

// ListarPorRol godoc
// @Summary Personas por rol
// @Tags personas
// @Produce json
// @Param role path string true "Nombre del rol"
// @Success 200 {object} dto.Envelope
// @Router /api/personas/role/{role} [get]
func (h *PersonasHandler) ListarPorRol(c *gin.Context) {
	p := dto.RolParam{Rol: c.Param("role")}
	if err := validateStruct(&p); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.svc.ListarPorRol(c.Request.Context(), p.Rol)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Personas obtenidas exitosamente", resp)
}

// Estadisticas godoc
// @Summary Estadísticas de personas
// @Tags personas
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /api/personas/stats [get]
func (h *PersonasHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, http.StatusOK, "Estadísticas obtenidas exitosamente", resp)
}

// queryInt reads a base-10 query value; anything unparsable counts as 0 so the
// service falls back to its defaults.
func queryInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
