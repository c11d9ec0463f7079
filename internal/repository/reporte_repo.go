package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

// FilaMetodo is one row of a GROUP BY metodo_pago aggregate.
type FilaMetodo struct {
	MetodoPago string          `gorm:"column:metodo_pago"`
	Total      decimal.Decimal `gorm:"column:total"`
}

// FilaProductoVendido is one row of the per-product sales aggregate.
type FilaProductoVendido struct {
	ProductoID uuid.UUID       `gorm:"column:producto_id"`
	Nombre     string          `gorm:"column:nombre"`
	Cantidad   int             `gorm:"column:cantidad"`
	Ingreso    decimal.Decimal `gorm:"column:ingreso"`
}

// ReporteRepository runs the read-only aggregates behind the cash-closing
// and dashboard endpoints. Every window is [inicio, fin] in business time.
type ReporteRepository interface {
	// SumPagosVentaPorMetodo totals direct-sale payment entries grouped by
	// method. When vendedorID is non-nil the sum is scoped to that seller.
	SumPagosVentaPorMetodo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaMetodo, error)
	// SumAnticiposPorMetodo totals deposits of pedidos created in the window.
	// When vendedorID is non-nil only that seller's pedidos count.
	SumAnticiposPorMetodo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaMetodo, error)
	// SumPagosSaldoPorMetodo totals balance-settlement payment entries
	// recorded in the window.
	SumPagosSaldoPorMetodo(ctx context.Context, inicio, fin time.Time) ([]FilaMetodo, error)

	SumDescuentosVentas(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) (decimal.Decimal, error)
	SumDescuentosSaldo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) (decimal.Decimal, error)

	ProductosVendidos(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaProductoVendido, error)
	// CantidadVendidaPorProducto maps producto_id to units sold in the window.
	CantidadVendidaPorProducto(ctx context.Context, inicio, fin time.Time) (map[uuid.UUID]int, error)
	// ResumenVentas returns the revenue and sale count of the window.
	ResumenVentas(ctx context.Context, inicio, fin time.Time) (decimal.Decimal, int64, error)
	// RankingProductos aggregates units and revenue per product over all time.
	RankingProductos(ctx context.Context) ([]FilaProductoVendido, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) SumPagosVentaPorMetodo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaMetodo, error) {
	q := r.db.WithContext(ctx).
		Table("pagos").
		Select("pagos.metodo_pago AS metodo_pago, COALESCE(SUM(pagos.monto - pagos.cambio), 0) AS total").
		Joins("JOIN ventas ON ventas.id = pagos.venta_id").
		Where("pagos.venta_id IS NOT NULL AND pagos.es_saldo = FALSE").
		Where("ventas.creado_en BETWEEN ? AND ?", inicio, fin)
	if vendedorID != nil {
		q = q.Where("ventas.vendedor_id = ?", *vendedorID)
	}
	var filas []FilaMetodo
	err := q.Group("pagos.metodo_pago").Scan(&filas).Error
	return filas, err
}

func (r *reporteRepo) SumAnticiposPorMetodo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaMetodo, error) {
	q := r.db.WithContext(ctx).
		Table("pedidos").
		Select("metodo_pago_anticipo AS metodo_pago, COALESCE(SUM(anticipo), 0) AS total").
		Where("anticipo > 0").
		Where("creado_en BETWEEN ? AND ?", inicio, fin)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}
	var filas []FilaMetodo
	err := q.Group("metodo_pago_anticipo").Scan(&filas).Error
	return filas, err
}

func (r *reporteRepo) SumPagosSaldoPorMetodo(ctx context.Context, inicio, fin time.Time) ([]FilaMetodo, error) {
	var filas []FilaMetodo
	err := r.db.WithContext(ctx).
		Table("pagos").
		Select("metodo_pago AS metodo_pago, COALESCE(SUM(monto - cambio), 0) AS total").
		Where("es_saldo = TRUE").
		Where("creado_en BETWEEN ? AND ?", inicio, fin).
		Group("metodo_pago").
		Scan(&filas).Error
	return filas, err
}

func (r *reporteRepo) SumDescuentosVentas(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Venta{}).
		Select("COALESCE(SUM(descuento), 0)").
		Where("creado_en BETWEEN ? AND ?", inicio, fin)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}
	var total decimal.Decimal
	err := q.Scan(&total).Error
	return total, err
}

func (r *reporteRepo) SumDescuentosSaldo(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Pedido{}).
		Select("COALESCE(SUM(descuento_saldo), 0)").
		Where("estado = ?", model.EstadoCompletado).
		Where("anticipo > 0").
		Where("creado_en BETWEEN ? AND ?", inicio, fin)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}
	var total decimal.Decimal
	err := q.Scan(&total).Error
	return total, err
}

func (r *reporteRepo) ProductosVendidos(ctx context.Context, inicio, fin time.Time, vendedorID *uuid.UUID) ([]FilaProductoVendido, error) {
	q := r.db.WithContext(ctx).
		Table("venta_productos").
		Select(`venta_productos.producto_id AS producto_id,
			productos.nombre AS nombre,
			COALESCE(SUM(venta_productos.cantidad), 0) AS cantidad,
			COALESCE(SUM(venta_productos.cantidad * venta_productos.precio_unitario), 0) AS ingreso`).
		Joins("JOIN ventas ON ventas.id = venta_productos.venta_id").
		Joins("JOIN productos ON productos.id = venta_productos.producto_id").
		Where("ventas.creado_en BETWEEN ? AND ?", inicio, fin)
	if vendedorID != nil {
		q = q.Where("ventas.vendedor_id = ?", *vendedorID)
	}
	var filas []FilaProductoVendido
	err := q.Group("venta_productos.producto_id, productos.nombre").
		Order("cantidad DESC").
		Scan(&filas).Error
	return filas, err
}

func (r *reporteRepo) CantidadVendidaPorProducto(ctx context.Context, inicio, fin time.Time) (map[uuid.UUID]int, error) {
	type fila struct {
		ProductoID uuid.UUID `gorm:"column:producto_id"`
		Cantidad   int       `gorm:"column:cantidad"`
	}
	var filas []fila
	err := r.db.WithContext(ctx).
		Table("venta_productos").
		Select("venta_productos.producto_id AS producto_id, COALESCE(SUM(venta_productos.cantidad), 0) AS cantidad").
		Joins("JOIN ventas ON ventas.id = venta_productos.venta_id").
		Where("ventas.creado_en BETWEEN ? AND ?", inicio, fin).
		Group("venta_productos.producto_id").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int, len(filas))
	for _, f := range filas {
		out[f.ProductoID] = f.Cantidad
	}
	return out, nil
}

func (r *reporteRepo) ResumenVentas(ctx context.Context, inicio, fin time.Time) (decimal.Decimal, int64, error) {
	type fila struct {
		Total    decimal.Decimal `gorm:"column:total"`
		Cantidad int64           `gorm:"column:cantidad"`
	}
	var f fila
	err := r.db.WithContext(ctx).
		Model(&model.Venta{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS cantidad").
		Where("creado_en BETWEEN ? AND ?", inicio, fin).
		Scan(&f).Error
	return f.Total, f.Cantidad, err
}

func (r *reporteRepo) RankingProductos(ctx context.Context) ([]FilaProductoVendido, error) {
	var filas []FilaProductoVendido
	err := r.db.WithContext(ctx).
		Table("venta_productos").
		Select(`venta_productos.producto_id AS producto_id,
			productos.nombre AS nombre,
			COALESCE(SUM(venta_productos.cantidad), 0) AS cantidad,
			COALESCE(SUM(venta_productos.cantidad * venta_productos.precio_unitario), 0) AS ingreso`).
		Joins("JOIN productos ON productos.id = venta_productos.producto_id").
		Group("venta_productos.producto_id, productos.nombre").
		Order("cantidad DESC").
		Scan(&filas).Error
	return filas, err
}
