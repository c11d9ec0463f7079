package pagos

import "github.com/shopspring/decimal"

// ValidarDescuento accepts any descuento in [0, base], boundaries included.
func ValidarDescuento(descuento, base decimal.Decimal) error {
	if descuento.IsNegative() || descuento.GreaterThan(base) {
		return &ErrDescuentoInvalido{Descuento: descuento, Base: base}
	}
	return nil
}

// ValidarCantidad rejects a requested quantity above the on-hand stock.
func ValidarCantidad(producto string, solicitado, disponible int) error {
	if solicitado > disponible {
		return &ErrStockInsuficiente{Producto: producto, Solicitado: solicitado, Disponible: disponible}
	}
	return nil
}

// igualConTolerancia compares two amounts within Epsilon.
func igualConTolerancia(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}
