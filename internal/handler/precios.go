package handler

import (
	"net/http"
	"strconv"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/apierror"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/dto"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PreciosHandler struct{ svc service.PrecioService }

func NewPreciosHandler(svc service.PrecioService) *PreciosHandler {
	return &PreciosHandler{svc: svc}
}

// Consultar godoc
// @Summary Consulta el precio de venta vigente de un ítem
// @Description Resuelve oferta manual, reglas por prioridad y tramos de volumen.
// @Tags precios
// @Produce json
// @Param id path string true "ID del ítem"
// @Param cantidad query int false "Cantidad cotizada (default 1)"
// @Success 200 {object} dto.ConsultaPrecioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/precios/{id} [get]
func (h *PreciosHandler) Consultar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	cantidad := 1
	if q := c.Query("cantidad"); q != "" {
		cantidad, err = strconv.Atoi(q)
		if err != nil || cantidad < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("Cantidad invalida"))
			return
		}
	}

	resp, err := h.svc.ConsultarPrecio(c.Request.Context(), id, cantidad)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Catalogo godoc
// @Summary Catálogo de ítems activos con precio de venta resuelto
// @Tags precios
// @Produce json
// @Success 200 {object} dto.CatalogoListResponse
// @Router /v1/precios/catalogo [get]
func (h *PreciosHandler) Catalogo(c *gin.Context) {
	var filter dto.ItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Catalogo(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el catalogo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
