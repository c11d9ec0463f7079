package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago is a single payment entry. Shared by sales and pedidos: exactly one
// of VentaID / PedidoID is set. EsSaldo distinguishes a pre-order balance
// payment from the deposit recorded at order-creation time.
// Cambio is only meaningful for EFECTIVO.
type Pago struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VentaID    *uuid.UUID      `gorm:"type:uuid;index" json:"ventaId,omitempty"`
	PedidoID   *uuid.UUID      `gorm:"type:uuid;index" json:"pedidoId,omitempty"`
	MetodoPago string          `gorm:"type:varchar(20);not null" json:"metodoPago"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	Cambio     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cambio"`
	EsSaldo    bool            `gorm:"not null;default:false" json:"esSaldo"`
	CreadoEn   time.Time       `gorm:"column:creado_en;index;autoCreateTime" json:"creadoEn"`
}

func (Pago) TableName() string { return "pagos" }
