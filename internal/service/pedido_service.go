package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/pagos"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

// PedidoService manages the pre-order lifecycle: creation with deposit,
// status tracking, and the balance settlement that completes the pedido.
// Pedidos never touch inventory.
type PedidoService struct {
	pedidos  repository.PedidoRepository
	clientes repository.ClienteRepository
}

func NewPedidoService(pedidos repository.PedidoRepository, clientes repository.ClienteRepository) *PedidoService {
	return &PedidoService{pedidos: pedidos, clientes: clientes}
}

// Crear registers a pre-order. A non-zero deposit is recorded as a payment
// entry in the same transaction so it shows up in cash closings.
func (s *PedidoService) Crear(ctx context.Context, vendedorID *uuid.UUID, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Cliente", ID: req.ClienteID}
	}
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Recurso: "Cliente", ID: req.ClienteID}
		}
		return nil, err
	}

	if req.Anticipo.IsNegative() || req.Anticipo.GreaterThan(req.MontoTotal) {
		return nil, ErrAnticipoInvalido
	}
	metodo := req.MetodoPagoAnticipo
	if metodo == "" {
		metodo = pagos.MetodoEfectivo
	}
	if !pagos.MetodoValido(metodo) {
		return nil, &pagos.ErrMetodoInvalido{Metodo: metodo}
	}

	pedido := &model.Pedido{
		ClienteID:          clienteID,
		Detalles:           req.Detalles,
		FechaEntrega:       req.FechaEntrega,
		MontoTotal:         req.MontoTotal,
		Anticipo:           req.Anticipo,
		MetodoPagoAnticipo: metodo,
		Estado:             model.EstadoPendiente,
		VendedorID:         vendedorID,
	}

	err = runTx(ctx, s.pedidos.DB(), func(tx *gorm.DB) error {
		if err := s.pedidos.CreateTx(tx, pedido); err != nil {
			return err
		}
		if req.Anticipo.IsPositive() {
			return s.pedidos.CreatePagoTx(tx, &model.Pago{
				PedidoID:   &pedido.ID,
				MetodoPago: metodo,
				Monto:      req.Anticipo,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pedido, nil
}

// ListarActivos returns non-terminal pedidos ordered by delivery date.
func (s *PedidoService) ListarActivos(ctx context.Context) ([]model.Pedido, error) {
	return s.pedidos.ListActivos(ctx)
}

func (s *PedidoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	pedido, err := s.pedidos.FindByIDConPagos(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Pedido", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return pedido, nil
}

// Actualizar applies a partial update. Terminal pedidos reject every edit,
// and estado=COMPLETADO is rejected outright: completion only happens via
// PagarSaldo, which records the payment it implies.
func (s *PedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	pedido, err := s.pedidos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Pedido", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}

	if pedido.Estado == model.EstadoCompletado {
		return nil, ErrPedidoYaCompletado
	}
	if pedido.Estado == model.EstadoCancelado {
		return nil, ErrPedidoCancelado
	}

	if req.Estado != nil {
		estado := *req.Estado
		if estado == model.EstadoCompletado {
			return nil, ErrCompletarPorPatch
		}
		valido := false
		for _, e := range model.EstadosPedido {
			if e == estado {
				valido = true
				break
			}
		}
		if !valido {
			return nil, &ErrEstadoInvalido{Estado: estado}
		}
		pedido.Estado = estado
	}
	if req.Detalles != nil {
		pedido.Detalles = *req.Detalles
	}
	if req.FechaEntrega != nil {
		pedido.FechaEntrega = *req.FechaEntrega
	}
	if req.MontoTotal != nil {
		pedido.MontoTotal = *req.MontoTotal
	}
	if req.Anticipo != nil {
		pedido.Anticipo = *req.Anticipo
	}
	if pedido.Anticipo.IsNegative() || pedido.Anticipo.GreaterThan(pedido.MontoTotal) {
		return nil, ErrAnticipoInvalido
	}

	if err := s.pedidos.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// PagarSaldo settles the outstanding balance and completes the pedido. The
// split payments must cover saldo - descuento within tolerance; the payment
// entries and the status change commit atomically.
func (s *PedidoService) PagarSaldo(ctx context.Context, id uuid.UUID, req dto.PagarSaldoRequest) (*model.Pedido, error) {
	pedido, err := s.pedidos.FindByIDConPagos(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Pedido", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}

	if pedido.Estado == model.EstadoCompletado {
		return nil, ErrPedidoYaCompletado
	}
	if pedido.Estado == model.EstadoCancelado {
		return nil, ErrPedidoCancelado
	}

	saldo := pedido.Saldo()
	if err := pagos.ValidarDescuento(req.Descuento, saldo); err != nil {
		return nil, err
	}
	aPagar := saldo.Sub(req.Descuento)

	legs := make([]pagos.Entrada, 0, len(req.Pagos))
	for _, p := range req.Pagos {
		legs = append(legs, pagos.Entrada{Metodo: p.Metodo, Monto: p.Monto, Cambio: p.Cambio})
	}
	entradas, _, err := pagos.ReconciliarDividido(legs, aPagar)
	if err != nil {
		return nil, err
	}

	nuevos := make([]model.Pago, 0, len(entradas))
	err = runTx(ctx, s.pedidos.DB(), func(tx *gorm.DB) error {
		nuevos = nuevos[:0]
		for _, e := range entradas {
			pago := &model.Pago{
				PedidoID:   &pedido.ID,
				MetodoPago: e.Metodo,
				Monto:      e.Monto,
				Cambio:     e.Cambio,
				EsSaldo:    true,
			}
			if err := s.pedidos.CreatePagoTx(tx, pago); err != nil {
				return err
			}
			nuevos = append(nuevos, *pago)
		}
		return s.pedidos.CompletarTx(tx, pedido.ID, req.Descuento)
	})
	if err != nil {
		return nil, err
	}

	// Response carries the full payment history: deposit plus the balance
	// entries just written.
	pedido.Pagos = append(pedido.Pagos, nuevos...)
	pedido.Estado = model.EstadoCompletado
	pedido.DescuentoSaldo = req.Descuento
	return pedido, nil
}
