package pagos

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrPagosFaltantes: split settlement invoked with an empty payment list.
var ErrPagosFaltantes = errors.New("Debes proporcionar al menos un método de pago")

// ErrDescuentoInvalido reports a discount outside [0, Base].
type ErrDescuentoInvalido struct {
	Descuento decimal.Decimal
	Base      decimal.Decimal
}

func (e *ErrDescuentoInvalido) Error() string {
	return fmt.Sprintf("El descuento no puede ser negativo ni mayor al saldo (%s Bs)", e.Base.StringFixed(2))
}

// ErrPagoNoCoincide reports a split-payment sum that misses the target by
// more than Epsilon. Both sums are carried for diagnostics.
type ErrPagoNoCoincide struct {
	Pagado   decimal.Decimal
	Esperado decimal.Decimal
}

func (e *ErrPagoNoCoincide) Error() string {
	return fmt.Sprintf("Total pagado (%s) debe ser igual al total a pagar (%s)",
		e.Pagado.StringFixed(2), e.Esperado.StringFixed(2))
}

// ErrStockInsuficiente names the offending product.
type ErrStockInsuficiente struct {
	Producto   string
	Solicitado int
	Disponible int
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto: %s.", e.Producto)
}

// ErrMetodoInvalido reports an unknown payment method.
type ErrMetodoInvalido struct {
	Metodo string
}

func (e *ErrMetodoInvalido) Error() string {
	return fmt.Sprintf("Método de pago no válido: %s", e.Metodo)
}

// ErrMontoInsuficiente: a legacy single cash payment below the target.
type ErrMontoInsuficiente struct {
	Recibido decimal.Decimal
	Total    decimal.Decimal
}

func (e *ErrMontoInsuficiente) Error() string {
	return fmt.Sprintf("El monto recibido (%s) es menor al total a pagar (%s)",
		e.Recibido.StringFixed(2), e.Total.StringFixed(2))
}

// EsErrorDeNegocio reports whether err is one of the business-rule errors
// defined by this package (mapped to 400 at the HTTP boundary).
func EsErrorDeNegocio(err error) bool {
	var descuento *ErrDescuentoInvalido
	var mismatch *ErrPagoNoCoincide
	var stock *ErrStockInsuficiente
	var metodo *ErrMetodoInvalido
	var monto *ErrMontoInsuficiente
	return errors.Is(err, ErrPagosFaltantes) ||
		errors.As(err, &descuento) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &stock) ||
		errors.As(err, &metodo) ||
		errors.As(err, &monto)
}
