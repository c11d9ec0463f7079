package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/fechas"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/pagos"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

// VentaService settles point-of-sale transactions: it prices the cart
// server-side, reconciles the payment, and persists the sale graph while
// decrementing stock in one transaction.
type VentaService struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	loc       *time.Location
}

func NewVentaService(ventas repository.VentaRepository, productos repository.ProductoRepository, loc *time.Location) *VentaService {
	return &VentaService{ventas: ventas, productos: productos, loc: loc}
}

// Registrar settles a sale. Client-sent prices are ignored: the cart is
// re-priced from the catalog, the discount and payment are validated against
// the server-side total, and only then does the atomic write run. Stock is
// decremented with a conditional guard so two concurrent sales can never
// drive inventory negative.
func (s *VentaService) Registrar(ctx context.Context, vendedorID *uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		id, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, &NotFoundError{Recurso: "Producto", ID: item.ProductoID}
		}
		ids = append(ids, id)
	}

	productos, err := s.productos.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]model.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	subtotal := decimal.Zero
	items := make([]model.VentaProducto, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		id, _ := uuid.Parse(item.ProductoID)
		producto, ok := porID[id]
		if !ok {
			return nil, &NotFoundError{Recurso: "Producto", ID: item.ProductoID}
		}
		if err := pagos.ValidarCantidad(producto.Nombre, item.Cantidad, producto.Inventario); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(producto.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
		items = append(items, model.VentaProducto{
			ProductoID:     producto.ID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: producto.Precio,
		})
	}

	if err := pagos.ValidarDescuento(req.Descuento, subtotal); err != nil {
		return nil, err
	}
	total := subtotal.Sub(req.Descuento)

	var entradas []pagos.Entrada
	var cambioTotal decimal.Decimal
	if req.Pago.EsDividido() {
		legs := make([]pagos.Entrada, 0, len(req.Pago.Pagos))
		for _, p := range req.Pago.Pagos {
			legs = append(legs, pagos.Entrada{Metodo: p.Metodo, Monto: p.Monto, Cambio: p.Cambio})
		}
		entradas, cambioTotal, err = pagos.ReconciliarDividido(legs, total)
	} else {
		entradas, cambioTotal, err = pagos.ReconciliarSimple(req.Pago.Metodo, req.Pago.MontoRecibido, total)
	}
	if err != nil {
		return nil, err
	}

	venta := &model.Venta{
		Subtotal:   subtotal,
		Descuento:  req.Descuento,
		Total:      total,
		VendedorID: vendedorID,
		Items:      items,
	}
	for _, e := range entradas {
		venta.Pagos = append(venta.Pagos, model.Pago{
			MetodoPago: e.Metodo,
			Monto:      e.Monto,
			Cambio:     e.Cambio,
		})
	}

	err = runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		if err := s.ventas.Create(ctx, tx, venta); err != nil {
			return err
		}
		for _, item := range venta.Items {
			ok, err := s.productos.DescontarStockTx(tx, item.ProductoID, item.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				producto := porID[item.ProductoID]
				return &pagos.ErrStockInsuficiente{
					Producto:   producto.Nombre,
					Solicitado: item.Cantidad,
					Disponible: producto.Inventario,
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ventaAResponse(venta, porID)
	resp.Cambio = cambioTotal
	return resp, nil
}

// Historial returns the sales of the requested period (dia/semana/mes) in
// the business timezone, most recent first.
func (s *VentaService) Historial(ctx context.Context, periodo string) ([]dto.VentaResponse, error) {
	inicio, fin := fechas.Ventana(periodo, s.loc, time.Now())
	ventas, err := s.ventas.ListEnVentana(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaAResponse(&ventas[i], nil))
	}
	return out, nil
}

// Obtener loads a sale with its items and payments, for the receipt.
func (s *VentaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	venta, err := s.ventas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Venta", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return venta, nil
}

// ventaAResponse maps a sale graph to its API shape. Product names come from
// the preloaded association, or from porID when the graph was just built and
// associations are not populated yet.
func ventaAResponse(v *model.Venta, porID map[uuid.UUID]model.Producto) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:        v.ID.String(),
		Subtotal:  v.Subtotal,
		Descuento: v.Descuento,
		Total:     v.Total,
		CreadoEn:  v.CreadoEn.Format(time.RFC3339),
	}

	cambio := decimal.Zero
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		} else if p, ok := porID[item.ProductoID]; ok {
			nombre = p.Nombre
		}
		resp.Items = append(resp.Items, dto.ItemVentaResponse{
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))),
		})
	}
	for _, pago := range v.Pagos {
		resp.Pagos = append(resp.Pagos, dto.PagoResponse{
			Metodo: pago.MetodoPago,
			Monto:  pago.Monto,
			Cambio: pago.Cambio,
		})
		cambio = cambio.Add(pago.Cambio)
	}
	resp.Cambio = cambio
	return resp
}
