package handler

import (
	"net/http"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/apierror"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// Crear godoc
// @Summary Alta manual de un ítem de inventario
// @Tags items
// @Accept json
// @Produce json
// @Param body body dto.CrearItemRequest true "Datos del ítem"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/items [post]
func (h *ItemsHandler) Crear(c *gin.Context) {
	var req dto.CrearItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista ítems con filtros y paginación
// @Tags items
// @Produce json
// @Param q query string false "Búsqueda libre (marca, modelo, medida, descripción)"
// @Param marca query string false "Filtro por marca"
// @Param rescatada query string false "true = solo filas pendientes de revisión"
// @Success 200 {object} dto.ItemListResponse
// @Router /v1/items [get]
func (h *ItemsHandler) Listar(c *gin.Context) {
	var filter dto.ItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FijarPrecioManual godoc
// @Summary Fija o limpia el precio de oferta manual de un ítem
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID del ítem"
// @Param body body dto.FijarPrecioManualRequest true "Precio (null para limpiar)"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/items/{id}/precio-manual [put]
func (h *ItemsHandler) FijarPrecioManual(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.FijarPrecioManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FijarPrecioManual(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AjustarStock(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al recuperar el item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemsHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
