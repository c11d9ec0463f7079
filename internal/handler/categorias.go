package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dussanclaurer/pepito-s-app/internal/apierror"
	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type CategoriasHandler struct{ svc *service.CategoriaService }

func NewCategoriasHandler(svc *service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// ListarCategorias godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Categoria
// @Router       /categorias [get]
func (h *CategoriasHandler) ListarCategorias(c *gin.Context) {
	categorias, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// CrearCategoria godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCategoriaRequest true "Nombre"
// @Success      201  {object} model.Categoria
// @Router       /categorias [post]
func (h *CategoriasHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

// ActualizarCategoria godoc
// @Summary      Renombrar categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "UUID de la categoría"
// @Param        body body dto.ActualizarCategoriaRequest true "Nombre"
// @Success      200  {object} model.Categoria
// @Failure      404  {object} apierror.APIError
// @Router       /categorias/{id} [patch]
func (h *CategoriasHandler) ActualizarCategoria(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// EliminarCategoria godoc
// @Summary      Eliminar categoría
// @Description  Solo se elimina si ningún producto la referencia.
// @Tags         categorias
// @Security     BearerAuth
// @Param        id path string true "UUID de la categoría"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /categorias/{id} [delete]
func (h *CategoriasHandler) EliminarCategoria(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
