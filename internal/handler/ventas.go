package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dussanclaurer/pepito-s-app/internal/apierror"
	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/infra"
	"github.com/dussanclaurer/pepito-s-app/internal/middleware"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type VentasHandler struct{ svc *service.VentaService }

func NewVentasHandler(svc *service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// RegistrarVenta godoc
// @Summary      Registrar una nueva venta
// @Description  Liquida una venta ACID: revalida precios en servidor, concilia el pago y descuenta stock en una transacción.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Carrito, descuento y pago"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	var vendedorID *uuid.UUID
	if id, err := uuid.Parse(claims.UserID); err == nil {
		vendedorID = &id
	}

	resp, err := h.svc.Registrar(c.Request.Context(), vendedorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// HistorialVentas godoc
// @Summary      Historial de ventas
// @Description  Lista las ventas del periodo (dia | semana | mes) en horario del negocio, más recientes primero.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        periodo query string false "dia | semana | mes (default: dia)"
// @Success      200 {array} dto.VentaResponse
// @Router       /historial-ventas [get]
func (h *VentasHandler) HistorialVentas(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", "dia")
	resp, err := h.svc.Historial(c.Request.Context(), periodo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recibo godoc
// @Summary      Recibo PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /ventas/{id}/recibo [get]
func (h *VentasHandler) Recibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	venta, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := infra.ReciboVenta(venta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="recibo_`+corto(id.String())+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func corto(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
