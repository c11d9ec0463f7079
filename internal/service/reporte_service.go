package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/fechas"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/pagos"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

// Operador identifies the authenticated user a report is computed for.
// CAJERO operators get their direct sales and pedido aggregates scoped to
// themselves; balance payments carry no seller and stay till-wide.
type Operador struct {
	ID     uuid.UUID
	Nombre string
	Rol    string
}

// ReporteService computes the cash-closing and dashboard aggregates. Closing
// responses are cached in redis for a short TTL keyed by operator and
// window, since cashiers poll the endpoint while counting the till.
type ReporteService struct {
	reportes  repository.ReporteRepository
	productos repository.ProductoRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	umbral    int
	loc       *time.Location
}

func NewReporteService(
	reportes repository.ReporteRepository,
	productos repository.ProductoRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	umbral int,
	loc *time.Location,
) *ReporteService {
	return &ReporteService{
		reportes:  reportes,
		productos: productos,
		cache:     cache,
		cacheTTL:  cacheTTL,
		umbral:    umbral,
		loc:       loc,
	}
}

// CierreCaja aggregates the window's money movements grouped by payment
// method: direct-sale payments, pedido deposits, and balance settlements.
// Both methods always appear, zero-seeded, so the till count form renders a
// stable layout. For CAJERO operators the sale and pedido aggregates are
// scoped to their own vendedor_id; balance payments carry no seller and stay
// till-wide.
func (s *ReporteService) CierreCaja(ctx context.Context, op Operador, periodo string) (*dto.CierreCajaResponse, error) {
	inicio, fin := fechas.Ventana(periodo, s.loc, time.Now())

	claveCache := fmt.Sprintf("cierre:%s:%s:%s", op.ID, periodo, inicio.Format("2006-01-02"))
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, claveCache).Bytes(); err == nil {
			var cached dto.CierreCajaResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var vendedorID *uuid.UUID
	if op.Rol == model.RolCajero {
		vendedorID = &op.ID
	}

	porMetodo := map[string]decimal.Decimal{
		pagos.MetodoEfectivo: decimal.Zero,
		pagos.MetodoQR:       decimal.Zero,
	}

	filasVentas, err := s.reportes.SumPagosVentaPorMetodo(ctx, inicio, fin, vendedorID)
	if err != nil {
		return nil, err
	}
	filasAnticipos, err := s.reportes.SumAnticiposPorMetodo(ctx, inicio, fin, vendedorID)
	if err != nil {
		return nil, err
	}
	filasSaldo, err := s.reportes.SumPagosSaldoPorMetodo(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	totalVentas := decimal.Zero
	for _, f := range filasVentas {
		porMetodo[f.MetodoPago] = porMetodo[f.MetodoPago].Add(f.Total)
		totalVentas = totalVentas.Add(f.Total)
	}
	totalAnticipos := decimal.Zero
	for _, f := range filasAnticipos {
		porMetodo[f.MetodoPago] = porMetodo[f.MetodoPago].Add(f.Total)
		totalAnticipos = totalAnticipos.Add(f.Total)
	}
	totalSaldo := decimal.Zero
	for _, f := range filasSaldo {
		porMetodo[f.MetodoPago] = porMetodo[f.MetodoPago].Add(f.Total)
		totalSaldo = totalSaldo.Add(f.Total)
	}

	descVentas, err := s.reportes.SumDescuentosVentas(ctx, inicio, fin, vendedorID)
	if err != nil {
		return nil, err
	}
	descSaldo, err := s.reportes.SumDescuentosSaldo(ctx, inicio, fin, vendedorID)
	if err != nil {
		return nil, err
	}

	filasProductos, err := s.reportes.ProductosVendidos(ctx, inicio, fin, vendedorID)
	if err != nil {
		return nil, err
	}
	productosVendidos := make([]dto.ProductoVendidoResumen, 0, len(filasProductos))
	totalUnidades := 0
	for _, f := range filasProductos {
		productosVendidos = append(productosVendidos, dto.ProductoVendidoResumen{
			Nombre:          f.Nombre,
			CantidadVendida: f.Cantidad,
			IngresoGenerado: f.Ingreso,
		})
		totalUnidades += f.Cantidad
	}

	totales := make([]dto.TotalPorMetodo, 0, len(porMetodo))
	for _, metodo := range pagos.Metodos {
		totales = append(totales, dto.TotalPorMetodo{MetodoPago: metodo, Total: porMetodo[metodo]})
	}

	resp := &dto.CierreCajaResponse{
		TotalesPorMetodo: totales,
		TotalGeneral:     totalVentas.Add(totalAnticipos).Add(totalSaldo),
		FechaReporte:     inicio.Format("02/01/2006"),
		Desglose: dto.DesgloseCierre{
			TotalVentas:     totalVentas,
			TotalAnticipos:  totalAnticipos,
			TotalPagosSaldo: totalSaldo,
		},
		Usuario:               dto.UsuarioReporte{Nombre: op.Nombre, Rol: op.Rol},
		TotalDescuentos:       descVentas.Add(descSaldo),
		ProductosVendidos:     productosVendidos,
		TotalUnidadesVendidas: totalUnidades,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, claveCache, raw, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("clave", claveCache).Msg("no se pudo cachear el cierre de caja")
			}
		}
	}
	return resp, nil
}

// Resumen is the dashboard endpoint: revenue and sale count of the window
// plus the low-stock alert list.
func (s *ReporteService) Resumen(ctx context.Context, periodo string) (*dto.ResumenResponse, error) {
	inicio, fin := fechas.Ventana(periodo, s.loc, time.Now())

	total, cantidad, err := s.reportes.ResumenVentas(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}
	alerta, err := s.productos.ListInventarioBajo(ctx, s.umbral)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		alerta = []model.Producto{}
	}

	return &dto.ResumenResponse{
		VentasPorPeriodo: dto.VentasPorPeriodo{
			TotalIngresos:  total,
			NumeroDeVentas: cantidad,
			Periodo:        periodo,
		},
		AlertaInventario: alerta,
	}, nil
}

// MasVendidos returns the all-time product ranking, once by units and once
// by revenue.
func (s *ReporteService) MasVendidos(ctx context.Context) (*dto.MasVendidosResponse, error) {
	filas, err := s.reportes.RankingProductos(ctx)
	if err != nil {
		return nil, err
	}

	ranking := make([]dto.RankingProducto, 0, len(filas))
	for _, f := range filas {
		ranking = append(ranking, dto.RankingProducto{
			ProductoID:      f.ProductoID.String(),
			Nombre:          f.Nombre,
			CantidadVendida: f.Cantidad,
			IngresoGenerado: f.Ingreso,
		})
	}

	porCantidad := make([]dto.RankingProducto, len(ranking))
	copy(porCantidad, ranking)
	sort.SliceStable(porCantidad, func(i, j int) bool {
		return porCantidad[i].CantidadVendida > porCantidad[j].CantidadVendida
	})

	porIngresos := make([]dto.RankingProducto, len(ranking))
	copy(porIngresos, ranking)
	sort.SliceStable(porIngresos, func(i, j int) bool {
		return porIngresos[i].IngresoGenerado.GreaterThan(porIngresos[j].IngresoGenerado)
	})

	return &dto.MasVendidosResponse{
		RankingPorCantidad: porCantidad,
		RankingPorIngresos: porIngresos,
	}, nil
}
