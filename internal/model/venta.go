package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a completed point-of-sale transaction, paid in full at purchase
// time. Created atomically with its line items and payment entries, or not
// at all. Invariant: Total = Subtotal - Descuento.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Descuento  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"descuento"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	VendedorID *uuid.UUID      `gorm:"type:uuid;index" json:"vendedorId"`
	CreadoEn   time.Time       `gorm:"column:creado_en;index;autoCreateTime" json:"creadoEn"`

	Vendedor *Usuario        `gorm:"foreignKey:VendedorID" json:"vendedor,omitempty"`
	Items    []VentaProducto `gorm:"foreignKey:VentaID" json:"productosVendidos"`
	Pagos    []Pago          `gorm:"foreignKey:VentaID" json:"pagos"`
}

func (Venta) TableName() string { return "ventas" }

// VentaProducto is a sale line item. PrecioUnitario is copied from the
// product at sale time so historic totals stay stable under later price
// changes.
type VentaProducto struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VentaID        uuid.UUID       `gorm:"type:uuid;index;not null" json:"ventaId"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"productoId"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precioUnitario"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

func (VentaProducto) TableName() string { return "venta_productos" }
