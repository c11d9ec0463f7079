package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dussanclaurer/pepito-s-app/internal/apierror"
	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/middleware"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type PedidosHandler struct{ svc *service.PedidoService }

func NewPedidosHandler(svc *service.PedidoService) *PedidosHandler { return &PedidosHandler{svc: svc} }

// CrearPedido godoc
// @Summary      Crear pedido personalizado
// @Description  Registra un pedido con fecha de entrega y anticipo opcional. El anticipo queda registrado como pago para el cierre de caja.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Detalle del pedido"
// @Success      201  {object} model.Pedido
// @Failure      400  {object} apierror.APIError
// @Router       /pedidos [post]
func (h *PedidosHandler) CrearPedido(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	var vendedorID *uuid.UUID
	if id, err := uuid.Parse(claims.UserID); err == nil {
		vendedorID = &id
	}

	pedido, err := h.svc.Crear(c.Request.Context(), vendedorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pedido)
}

// ListarPedidos godoc
// @Summary      Listar pedidos activos
// @Description  Pedidos no terminales ordenados por fecha de entrega.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Pedido
// @Router       /pedidos [get]
func (h *PedidosHandler) ListarPedidos(c *gin.Context) {
	pedidos, err := h.svc.ListarActivos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// ObtenerPedido godoc
// @Summary      Detalle de un pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} model.Pedido
// @Failure      404 {object} apierror.APIError
// @Router       /pedidos/{id} [get]
func (h *PedidosHandler) ObtenerPedido(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	pedido, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// ActualizarPedido godoc
// @Summary      Actualizar pedido
// @Description  Actualización parcial. estado=COMPLETADO se rechaza: completar es exclusivo del pago del saldo.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID del pedido"
// @Param        body body dto.ActualizarPedidoRequest true "Campos a actualizar"
// @Success      200  {object} model.Pedido
// @Failure      400  {object} apierror.APIError
// @Router       /pedidos/{id} [patch]
func (h *PedidosHandler) ActualizarPedido(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// PagarSaldo godoc
// @Summary      Pagar saldo y completar pedido
// @Description  Registra los pagos del saldo pendiente (menos descuento) y marca el pedido COMPLETADO, todo en una transacción.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID del pedido"
// @Param        body body dto.PagarSaldoRequest true "Descuento y pagos del saldo"
// @Success      200  {object} model.Pedido
// @Failure      400  {object} apierror.APIError
// @Router       /pedidos/{id}/pagar [post]
func (h *PedidosHandler) PagarSaldo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.PagarSaldoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.PagarSaldo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}
