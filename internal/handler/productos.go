package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dussanclaurer/pepito-s-app/internal/apierror"
	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type ProductosHandler struct{ svc *service.ProductoService }

func NewProductosHandler(svc *service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// ListarProductos godoc
// @Summary      Listar catálogo
// @Description  Catálogo completo con las unidades vendidas hoy por producto.
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductoConVentas
// @Router       /productos [get]
func (h *ProductosHandler) ListarProductos(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// CrearProducto godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProductoRequest true "Datos del producto"
// @Success      201  {object} model.Producto
// @Failure      404  {object} apierror.APIError
// @Router       /productos [post]
func (h *ProductosHandler) CrearProducto(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producto)
}

// ActualizarProducto godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                        true "UUID del producto"
// @Param        body body dto.ActualizarProductoRequest true "Campos a actualizar"
// @Success      200  {object} model.Producto
// @Failure      404  {object} apierror.APIError
// @Router       /productos/{id} [patch]
func (h *ProductosHandler) ActualizarProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// EliminarProducto godoc
// @Summary      Eliminar producto
// @Description  Con historial de ventas se desactiva (soft delete); sin historial se elimina de verdad. La respuesta indica cuál aplicó.
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /productos/{id} [delete]
func (h *ProductosHandler) EliminarProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	policy, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resultado": string(policy)})
}

// ReactivarProducto godoc
// @Summary      Reactivar producto desactivado
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200 {object} model.Producto
// @Failure      404 {object} apierror.APIError
// @Router       /productos/{id}/reactivar [post]
func (h *ProductosHandler) ReactivarProducto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	producto, err := h.svc.Reactivar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}
