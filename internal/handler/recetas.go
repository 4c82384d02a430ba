package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"recetario/internal/apierror"
	"recetario/internal/dto"
	"recetario/internal/repository"
	"recetario/internal/service"

	"github.com/gin-gonic/gin"
)

type RecetasHandler struct{ svc service.RecetaService }

func NewRecetasHandler(svc service.RecetaService) *RecetasHandler {
	return &RecetasHandler{svc: svc}
}

func (h *RecetasHandler) Listar(c *gin.Context) {
	recetas, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener recetas"))
		return
	}
	c.JSON(http.StatusOK, recetas)
}

func (h *RecetasHandler) ObtenerPorID(c *gin.Context) {
	receta, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Receta no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener receta"))
		return
	}
	c.JSON(http.StatusOK, receta)
}

func (h *RecetasHandler) Crear(c *gin.Context) {
	var form dto.RecetaForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido: "+err.Error()))
		return
	}
	receta, err := h.svc.Crear(c.Request.Context(), form, imagenAdjunta(c))
	if err != nil {
		if esErrorDeImagen(err) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear receta: "+err.Error()))
		return
	}
	c.JSON(http.StatusCreated, receta)
}

func (h *RecetasHandler) Actualizar(c *gin.Context) {
	var form dto.RecetaForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido: "+err.Error()))
		return
	}
	receta, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), form, imagenAdjunta(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Receta no encontrada"))
		case esErrorDeImagen(err):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar receta: "+err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, receta)
}

func (h *RecetasHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Receta no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar receta"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Receta eliminada correctamente"})
}

// imagenAdjunta returns the optional "image" part; a request without one is
// simply a recipe without a new image.
func imagenAdjunta(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func esErrorDeImagen(err error) bool {
	return errors.Is(err, service.ErrImagenInvalida) || errors.Is(err, service.ErrImagenMuyGrande)
}
