package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/apierror"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/middleware"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxArchivoImportacion limita el tamaño del archivo subido (20 MB).
const maxArchivoImportacion = 20 << 20

type ImportacionesHandler struct{ svc service.ImportacionService }

func NewImportacionesHandler(svc service.ImportacionService) *ImportacionesHandler {
	return &ImportacionesHandler{svc: svc}
}

// Importar godoc
// @Summary Importa una planilla de proveedor (XLSX, XLS o CSV)
// @Tags importaciones
// @Accept multipart/form-data
// @Produce json
// @Param archivo formData file true "Planilla de stock del proveedor"
// @Success 201 {object} dto.ImportacionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/importaciones [post]
func (h *ImportacionesHandler) Importar(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Debe adjuntar el archivo en el campo 'archivo'"))
		return
	}
	if fileHeader.Size > maxArchivoImportacion {
		c.JSON(http.StatusBadRequest, apierror.New("El archivo supera el tamaño maximo de 20 MB"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".xlsx", ".xls", ".csv":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Formato no soportado. Use XLSX, XLS o CSV"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}

	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token sin identidad valida"))
		return
	}

	resp, err := h.svc.Importar(c.Request.Context(), usuarioID, fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ImportacionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarLotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar importaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ImportacionesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerLote(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Lote no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
