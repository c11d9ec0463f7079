package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dussanclaurer/pepito-s-app/internal/middleware"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type ReportesHandler struct{ svc *service.ReporteService }

func NewReportesHandler(svc *service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func operadorDesdeClaims(claims *middleware.JWTClaims) service.Operador {
	op := service.Operador{Nombre: claims.Nombre, Rol: claims.Rol}
	if id, err := uuid.Parse(claims.UserID); err == nil {
		op.ID = id
	}
	return op
}

// CierreCaja godoc
// @Summary      Cierre de caja
// @Description  Totales por método de pago del periodo: ventas directas, anticipos de pedidos y pagos de saldo. CAJERO ve solo sus propias ventas directas.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        periodo query string false "dia | semana | mes (default: dia)"
// @Success      200 {object} dto.CierreCajaResponse
// @Router       /reportes/cierre-caja [get]
func (h *ReportesHandler) CierreCaja(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", "dia")
	op := operadorDesdeClaims(middleware.GetClaims(c))

	resp, err := h.svc.CierreCaja(c.Request.Context(), op, periodo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen del dashboard
// @Description  Ingresos y número de ventas del periodo más la alerta de inventario bajo.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        periodo query string false "dia | semana | mes (default: dia)"
// @Success      200 {object} dto.ResumenResponse
// @Router       /reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", "dia")
	resp, err := h.svc.Resumen(c.Request.Context(), periodo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MasVendidos godoc
// @Summary      Ranking histórico de productos
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.MasVendidosResponse
// @Router       /reportes/mas-vendidos [get]
func (h *ReportesHandler) MasVendidos(c *gin.Context) {
	resp, err := h.svc.MasVendidos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
