package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

// ─── Cierre de caja ──────────────────────────────────────────────────────────

type TotalPorMetodo struct {
	MetodoPago string          `json:"metodoPago"`
	Total      decimal.Decimal `json:"total"`
}

type DesgloseCierre struct {
	TotalVentas     decimal.Decimal `json:"totalVentas"`
	TotalAnticipos  decimal.Decimal `json:"totalAnticipos"`
	TotalPagosSaldo decimal.Decimal `json:"totalPagosSaldo"`
}

type UsuarioReporte struct {
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

type ProductoVendidoResumen struct {
	Nombre          string          `json:"nombre"`
	CantidadVendida int             `json:"cantidadVendida"`
	IngresoGenerado decimal.Decimal `json:"ingresoGenerado"`
}

type CierreCajaResponse struct {
	TotalesPorMetodo      []TotalPorMetodo         `json:"totalesPorMetodo"`
	TotalGeneral          decimal.Decimal          `json:"totalGeneral"`
	FechaReporte          string                   `json:"fechaReporte"`
	Desglose              DesgloseCierre           `json:"desglose"`
	Usuario               UsuarioReporte           `json:"usuario"`
	TotalDescuentos       decimal.Decimal          `json:"totalDescuentos"`
	ProductosVendidos     []ProductoVendidoResumen `json:"productosVendidos"`
	TotalUnidadesVendidas int                      `json:"totalUnidadesVendidas"`
}

// ─── Resumen / ranking ───────────────────────────────────────────────────────

type VentasPorPeriodo struct {
	TotalIngresos  decimal.Decimal `json:"totalIngresos"`
	NumeroDeVentas int64           `json:"numeroDeVentas"`
	Periodo        string          `json:"periodo"`
}

type ResumenResponse struct {
	VentasPorPeriodo  VentasPorPeriodo `json:"ventasPorPeriodo"`
	AlertaInventario  []model.Producto `json:"alertaInventario"`
}

type RankingProducto struct {
	ProductoID      string          `json:"productoId"`
	Nombre          string          `json:"nombre"`
	CantidadVendida int             `json:"cantidadVendida"`
	IngresoGenerado decimal.Decimal `json:"ingresoGenerado"`
}

type MasVendidosResponse struct {
	RankingPorCantidad []RankingProducto `json:"rankingPorCantidad"`
	RankingPorIngresos []RankingProducto `json:"rankingPorIngresos"`
}
