// Package pagos holds the pure money core shared by sale and pedido
// settlement: payment-method enumeration, monetary/quantity validation and
// the payment reconciler. Nothing here touches the database.
package pagos

import (
	"github.com/shopspring/decimal"
)

// Metodos de pago. Adding a method requires updating the reconciler's
// cash-specific branch (only EFECTIVO computes change) and the cierre-caja
// zero seeding in the report service.
const (
	MetodoEfectivo = "EFECTIVO"
	MetodoQR       = "QR"
)

// Metodos lists every valid payment method. Reports seed all of them with
// zero so both appear even without activity.
var Metodos = []string{MetodoEfectivo, MetodoQR}

// MetodoValido reports whether m is a known payment method.
func MetodoValido(m string) bool {
	for _, v := range Metodos {
		if v == m {
			return true
		}
	}
	return false
}

// Epsilon is the tolerance for monetary equality. Amounts arrive from
// clients rounded to cents; a split payment matches its target when the
// difference does not exceed one cent.
var Epsilon = decimal.New(1, -2) // 0.01

// Entrada is one reconciled payment leg, ready for persistence.
type Entrada struct {
	Metodo string
	Monto  decimal.Decimal
	Cambio decimal.Decimal
}
