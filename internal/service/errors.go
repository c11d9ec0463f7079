package service

import (
	"errors"
	"fmt"
)

// NotFoundError identifies a missing resource by its Spanish display name
// (Producto, Cliente, Pedido...). Mapped to 404 at the HTTP boundary.
type NotFoundError struct {
	Recurso string
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado", e.Recurso)
}

// EsNotFound reports whether err wraps a NotFoundError.
func EsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

var (
	// ErrPedidoYaCompletado: balance settlement or edit attempted on a
	// completed pedido.
	ErrPedidoYaCompletado = errors.New("Este pedido ya está completado")

	// ErrPedidoCancelado: operation attempted on a cancelled pedido.
	ErrPedidoCancelado = errors.New("Este pedido está cancelado")

	// ErrCompletarPorPatch: PATCH tried to set estado=COMPLETADO. Completion
	// only happens through the balance settlement endpoint.
	ErrCompletarPorPatch = errors.New("El pedido se completa registrando el pago del saldo")

	// ErrAnticipoInvalido: deposit outside [0, montoTotal].
	ErrAnticipoInvalido = errors.New("El anticipo no puede ser negativo ni mayor al monto total")

	// ErrTelefonoDuplicado: a cliente with that phone already exists.
	ErrTelefonoDuplicado = errors.New("Ya existe un cliente con ese teléfono")

	// ErrEmailDuplicado: a usuario with that email already exists.
	ErrEmailDuplicado = errors.New("Ya existe un usuario con ese email")

	// ErrCredencialesInvalidas covers unknown email, wrong password and
	// deactivated accounts alike.
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
)

// ErrEstadoInvalido reports an estado outside the pedido lifecycle.
type ErrEstadoInvalido struct {
	Estado string
}

func (e *ErrEstadoInvalido) Error() string {
	return fmt.Sprintf("Estado no válido: %s", e.Estado)
}

// ErrCategoriaConProductos blocks category deletion while products reference it.
type ErrCategoriaConProductos struct {
	Cantidad int64
}

func (e *ErrCategoriaConProductos) Error() string {
	return fmt.Sprintf("No se puede eliminar la categoría porque tiene %d producto(s) asociado(s)", e.Cantidad)
}

// EsErrorDeNegocio reports whether err is one of this package's
// business-rule errors (mapped to 400 at the HTTP boundary, 409 for the
// duplicate variants).
func EsErrorDeNegocio(err error) bool {
	var estado *ErrEstadoInvalido
	var categoria *ErrCategoriaConProductos
	return errors.Is(err, ErrPedidoYaCompletado) ||
		errors.Is(err, ErrPedidoCancelado) ||
		errors.Is(err, ErrCompletarPorPatch) ||
		errors.Is(err, ErrAnticipoInvalido) ||
		errors.As(err, &estado) ||
		errors.As(err, &categoria)
}
