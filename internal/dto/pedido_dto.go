package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearPedidoRequest struct {
	ClienteID          string          `json:"clienteId"          validate:"required,uuid"`
	Detalles           string          `json:"detalles"           validate:"required,min=3"`
	FechaEntrega       time.Time       `json:"fechaEntrega"       validate:"required"`
	MontoTotal         decimal.Decimal `json:"montoTotal"         validate:"required"`
	Anticipo           decimal.Decimal `json:"anticipo"           validate:"min=0"`
	MetodoPagoAnticipo string          `json:"metodoPagoAnticipo" validate:"omitempty,oneof=EFECTIVO QR"`
}

// ActualizarPedidoRequest is a partial update. Estado=COMPLETADO is rejected
// here — completion only happens through the balance settlement endpoint.
type ActualizarPedidoRequest struct {
	Estado       *string          `json:"estado"`
	Detalles     *string          `json:"detalles"`
	FechaEntrega *time.Time       `json:"fechaEntrega"`
	MontoTotal   *decimal.Decimal `json:"montoTotal"`
	Anticipo     *decimal.Decimal `json:"anticipo"`
}

type PagarSaldoRequest struct {
	Descuento decimal.Decimal `json:"descuento" validate:"min=0"`
	Pagos     []PagoInput     `json:"pagos"     validate:"omitempty,dive"`
}
