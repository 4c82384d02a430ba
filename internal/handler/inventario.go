package handler

import (
	"errors"
	"net/http"

	"recetario/internal/apierror"
	"recetario/internal/dto"
	"recetario/internal/repository"
	"recetario/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

func (h *InventarioHandler) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener inventario"))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventarioHandler) ObtenerPorID(c *gin.Context) {
	item, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener item"))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventarioHandler) Crear(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	item, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear item: "+err.Error()))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventarioHandler) Actualizar(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	item, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar item: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventarioHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar item"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item eliminado correctamente"})
}

func (h *InventarioHandler) Resumen(c *gin.Context) {
	resumen, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el resumen"))
		return
	}
	c.JSON(http.StatusOK, resumen)
}
