package handler

import (
	"net/http"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/apierror"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/middleware"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// Crear godoc
// @Summary Crea una cotización con precios congelados al momento de la emisión
// @Tags cotizaciones
// @Accept json
// @Produce json
// @Param body body dto.CrearCotizacionRequest true "Cliente y líneas"
// @Success 201 {object} dto.CotizacionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cotizaciones [post]
func (h *CotizacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token sin identidad valida"))
		return
	}

	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CotizacionesHandler) Listar(c *gin.Context) {
	var filter dto.CotizacionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cotizaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CotizacionesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
