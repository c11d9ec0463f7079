package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de pedido. COMPLETADO and CANCELADO are terminal. COMPLETADO is
// only reachable through balance settlement (POST /pedidos/:id/pagar) —
// never through a plain status PATCH, which would bypass payment recording.
const (
	EstadoPendiente        = "PENDIENTE"
	EstadoEnProgreso       = "EN_PROGRESO"
	EstadoListoParaEntrega = "LISTO_PARA_ENTREGA"
	EstadoCompletado       = "COMPLETADO"
	EstadoCancelado        = "CANCELADO"
)

// EstadosPedido are all valid lifecycle states, in order.
var EstadosPedido = []string{
	EstadoPendiente,
	EstadoEnProgreso,
	EstadoListoParaEntrega,
	EstadoCompletado,
	EstadoCancelado,
}

// EstadoTerminal reports whether a pedido in the given state accepts no
// further changes.
func EstadoTerminal(estado string) bool {
	return estado == EstadoCompletado || estado == EstadoCancelado
}

// Pedido is a custom pre-order (e.g. a custom cake) with a future delivery
// date, partially paid via Anticipo and settled later via balance payment.
// Invariant: 0 <= Anticipo <= MontoTotal. Pedidos never reserve stock.
type Pedido struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID          uuid.UUID       `gorm:"type:uuid;index;not null" json:"clienteId"`
	Detalles           string          `gorm:"not null" json:"detalles"`
	FechaEntrega       time.Time       `gorm:"not null" json:"fechaEntrega"`
	MontoTotal         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montoTotal"`
	Anticipo           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"anticipo"`
	MetodoPagoAnticipo string          `gorm:"type:varchar(20);not null;default:'EFECTIVO'" json:"metodoPagoAnticipo"`
	// DescuentoSaldo is set only at completion, by the balance settlement.
	DescuentoSaldo decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"descuentoSaldo"`
	Estado         string          `gorm:"type:varchar(30);not null;default:'PENDIENTE'" json:"estado"`
	VendedorID     *uuid.UUID      `gorm:"type:uuid;index" json:"vendedorId"`
	CreadoEn       time.Time       `gorm:"column:creado_en;index;autoCreateTime" json:"creadoEn"`
	ActualizadoEn  time.Time       `gorm:"column:actualizado_en;autoUpdateTime" json:"actualizadoEn"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Pagos   []Pago   `gorm:"foreignKey:PedidoID" json:"pagos,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// Saldo is the amount still owed at settlement time: MontoTotal - Anticipo.
func (p *Pedido) Saldo() decimal.Decimal {
	return p.MontoTotal.Sub(p.Anticipo)
}
