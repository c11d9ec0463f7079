package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemCarritoRequest struct {
	ProductoID string `json:"productoId" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"   validate:"required,min=1"`
}

// PagoInput is one leg of a split payment. Cambio is precomputed by the POS
// client as legs are added; the reconciler re-validates only the total.
type PagoInput struct {
	Metodo string          `json:"metodo" validate:"required,oneof=EFECTIVO QR"`
	Monto  decimal.Decimal `json:"monto"  validate:"required"`
	Cambio decimal.Decimal `json:"cambio"`
}

// PagoSpec is the tagged union the POS sends: either the split shape
// (Pagos non-empty) or the legacy single-payment shape (Metodo set). It is
// resolved once at the service boundary; only the canonical []pagos.Entrada
// shape exists past that point.
type PagoSpec struct {
	Pagos         []PagoInput      `json:"pagos"         validate:"omitempty,dive"`
	Metodo        string           `json:"metodo"        validate:"omitempty,oneof=EFECTIVO QR"`
	MontoRecibido *decimal.Decimal `json:"montoRecibido"`
}

// EsDividido reports whether the split shape was sent.
func (p PagoSpec) EsDividido() bool { return len(p.Pagos) > 0 }

type RegistrarVentaRequest struct {
	CartItems []ItemCarritoRequest `json:"cartItems" validate:"required,min=1,dive"`
	Descuento decimal.Decimal      `json:"descuento" validate:"min=0"`
	Pago      PagoSpec             `json:"payment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PagoResponse struct {
	Metodo string          `json:"metodo"`
	Monto  decimal.Decimal `json:"monto"`
	Cambio decimal.Decimal `json:"cambio"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Items     []ItemVentaResponse `json:"items"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Descuento decimal.Decimal     `json:"descuento"`
	Total     decimal.Decimal     `json:"total"`
	Pagos     []PagoResponse      `json:"pagos"`
	// Cambio is the total change owed to the customer across cash legs.
	// Informational only — it never touches persisted state.
	Cambio   decimal.Decimal `json:"cambio"`
	CreadoEn string          `json:"creadoEn"`
}
