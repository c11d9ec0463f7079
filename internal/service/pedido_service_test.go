package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/pagos"
)

func nuevoPedidoService() (*PedidoService, *stubPedidoRepo, *stubClienteRepo) {
	pedidos := newStubPedidoRepo()
	clientes := newStubClienteRepo()
	return NewPedidoService(pedidos, clientes), pedidos, clientes
}

func TestCrearPedidoConAnticipo(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "María", Telefono: "70000001"})

	pedido, err := svc.Crear(context.Background(), nil, dto.CrearPedidoRequest{
		ClienteID:          cliente.ID.String(),
		Detalles:           "Torta de cumpleaños, 20 porciones",
		FechaEntrega:       time.Now().AddDate(0, 0, 3),
		MontoTotal:         decimal.NewFromInt(100),
		Anticipo:           decimal.NewFromInt(30),
		MetodoPagoAnticipo: pagos.MetodoQR,
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoPendiente, pedido.Estado)
	assert.True(t, pedido.Saldo().Equal(decimal.NewFromInt(70)))

	// The deposit shows up as a payment entry for cash closings
	require.Len(t, pedidos.pagos, 1)
	assert.Equal(t, pagos.MetodoQR, pedidos.pagos[0].MetodoPago)
	assert.True(t, pedidos.pagos[0].Monto.Equal(decimal.NewFromInt(30)))
	assert.False(t, pedidos.pagos[0].EsSaldo)
}

func TestCrearPedidoSinAnticipoNoRegistraPago(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Luis", Telefono: "70000002"})

	pedido, err := svc.Crear(context.Background(), nil, dto.CrearPedidoRequest{
		ClienteID:    cliente.ID.String(),
		Detalles:     "Docena de empanadas",
		FechaEntrega: time.Now().AddDate(0, 0, 1),
		MontoTotal:   decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.Equal(t, pagos.MetodoEfectivo, pedido.MetodoPagoAnticipo)
	assert.Empty(t, pedidos.pagos)
}

func TestCrearPedidoAnticipoMayorAlTotal(t *testing.T) {
	svc, _, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Rosa", Telefono: "70000003"})

	_, err := svc.Crear(context.Background(), nil, dto.CrearPedidoRequest{
		ClienteID:    cliente.ID.String(),
		Detalles:     "Torta de boda",
		FechaEntrega: time.Now().AddDate(0, 0, 7),
		MontoTotal:   decimal.NewFromInt(100),
		Anticipo:     decimal.NewFromInt(150),
	})
	require.ErrorIs(t, err, ErrAnticipoInvalido)
}

func TestCrearPedidoClienteInexistente(t *testing.T) {
	svc, _, _ := nuevoPedidoService()

	_, err := svc.Crear(context.Background(), nil, dto.CrearPedidoRequest{
		ClienteID:    uuid.New().String(),
		Detalles:     "Torta",
		FechaEntrega: time.Now(),
		MontoTotal:   decimal.NewFromInt(10),
	})
	require.True(t, EsNotFound(err))
}

func TestPagarSaldoCompletaElPedido(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Ana", Telefono: "70000004"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Torta de tres pisos",
		MontoTotal: decimal.NewFromInt(100),
		Anticipo:   decimal.NewFromInt(30),
		Estado:     model.EstadoListoParaEntrega,
	})
	require.NoError(t, pedidos.CreatePagoTx(nil, &model.Pago{
		PedidoID:   &pedido.ID,
		MetodoPago: pagos.MetodoQR,
		Monto:      decimal.NewFromInt(30),
	}))

	// saldo 70, descuento 10 → a pagar 60
	actualizado, err := svc.PagarSaldo(context.Background(), pedido.ID, dto.PagarSaldoRequest{
		Descuento: decimal.NewFromInt(10),
		Pagos: []dto.PagoInput{
			{Metodo: pagos.MetodoEfectivo, Monto: decimal.NewFromInt(40)},
			{Metodo: pagos.MetodoQR, Monto: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoCompletado, actualizado.Estado)
	assert.True(t, actualizado.DescuentoSaldo.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, model.EstadoCompletado, pedidos.pedidos[pedido.ID].Estado)

	// The response carries the deposit plus both balance legs just recorded
	require.Len(t, actualizado.Pagos, 3)
	saldos := 0
	for _, pago := range actualizado.Pagos {
		if pago.EsSaldo {
			saldos++
		}
	}
	assert.Equal(t, 2, saldos)

	require.Len(t, pedidos.pagos, 3)
	for _, pago := range pedidos.pagos {
		require.NotNil(t, pago.PedidoID)
		assert.Equal(t, pedido.ID, *pago.PedidoID)
	}
}

func TestPagarSaldoNoCoincide(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Eva", Telefono: "70000005"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Cupcakes surtidos",
		MontoTotal: decimal.NewFromInt(100),
		Anticipo:   decimal.NewFromInt(30),
		Estado:     model.EstadoEnProgreso,
	})

	// a pagar 60, suma 59: fuera de tolerancia
	_, err := svc.PagarSaldo(context.Background(), pedido.ID, dto.PagarSaldoRequest{
		Descuento: decimal.NewFromInt(10),
		Pagos: []dto.PagoInput{
			{Metodo: pagos.MetodoEfectivo, Monto: decimal.NewFromInt(39)},
			{Metodo: pagos.MetodoQR, Monto: decimal.NewFromInt(20)},
		},
	})

	var mismatch *pagos.ErrPagoNoCoincide
	require.ErrorAs(t, err, &mismatch)

	// Nothing changed
	assert.Equal(t, model.EstadoEnProgreso, pedidos.pedidos[pedido.ID].Estado)
	assert.Empty(t, pedidos.pagos)
}

func TestPagarSaldoSinPagos(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Iris", Telefono: "70000006"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Pie de limón",
		MontoTotal: decimal.NewFromInt(40),
		Estado:     model.EstadoPendiente,
	})

	_, err := svc.PagarSaldo(context.Background(), pedido.ID, dto.PagarSaldoRequest{})
	require.ErrorIs(t, err, pagos.ErrPagosFaltantes)
}

func TestPagarSaldoPedidoYaCompletado(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Juan", Telefono: "70000007"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Torta helada",
		MontoTotal: decimal.NewFromInt(80),
		Estado:     model.EstadoCompletado,
	})

	_, err := svc.PagarSaldo(context.Background(), pedido.ID, dto.PagarSaldoRequest{
		Pagos: []dto.PagoInput{{Metodo: pagos.MetodoEfectivo, Monto: decimal.NewFromInt(80)}},
	})
	require.ErrorIs(t, err, ErrPedidoYaCompletado)
}

func TestActualizarPedidoRechazaCompletadoPorPatch(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Leo", Telefono: "70000008"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Brazo gitano",
		MontoTotal: decimal.NewFromInt(45),
		Estado:     model.EstadoPendiente,
	})

	estado := model.EstadoCompletado
	_, err := svc.Actualizar(context.Background(), pedido.ID, dto.ActualizarPedidoRequest{Estado: &estado})
	require.ErrorIs(t, err, ErrCompletarPorPatch)
	assert.Equal(t, model.EstadoPendiente, pedidos.pedidos[pedido.ID].Estado)
}

func TestActualizarPedidoAvanzaEstado(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Lia", Telefono: "70000009"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Selva negra",
		MontoTotal: decimal.NewFromInt(90),
		Estado:     model.EstadoPendiente,
	})

	estado := model.EstadoEnProgreso
	actualizado, err := svc.Actualizar(context.Background(), pedido.ID, dto.ActualizarPedidoRequest{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoEnProgreso, actualizado.Estado)
	assert.Equal(t, model.EstadoEnProgreso, pedidos.pedidos[pedido.ID].Estado)
}

func TestActualizarPedidoTerminalRechazado(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Paz", Telefono: "70000010"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Mil hojas",
		MontoTotal: decimal.NewFromInt(60),
		Estado:     model.EstadoCancelado,
	})

	detalles := "otro detalle"
	_, err := svc.Actualizar(context.Background(), pedido.ID, dto.ActualizarPedidoRequest{Detalles: &detalles})
	require.ErrorIs(t, err, ErrPedidoCancelado)
}

func TestActualizarPedidoEstadoInvalido(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Gala", Telefono: "70000011"})
	pedido := pedidos.agregar(model.Pedido{
		ClienteID:  cliente.ID,
		Detalles:   "Tiramisú",
		MontoTotal: decimal.NewFromInt(55),
		Estado:     model.EstadoPendiente,
	})

	estado := "ENTREGANDO"
	_, err := svc.Actualizar(context.Background(), pedido.ID, dto.ActualizarPedidoRequest{Estado: &estado})
	var estadoErr *ErrEstadoInvalido
	require.ErrorAs(t, err, &estadoErr)
}

func TestListarActivosExcluyeTerminales(t *testing.T) {
	svc, pedidos, clientes := nuevoPedidoService()
	cliente := clientes.agregar(model.Cliente{Nombre: "Sol", Telefono: "70000012"})

	pedidos.agregar(model.Pedido{ClienteID: cliente.ID, Detalles: "a", MontoTotal: decimal.NewFromInt(10), Estado: model.EstadoPendiente})
	pedidos.agregar(model.Pedido{ClienteID: cliente.ID, Detalles: "b", MontoTotal: decimal.NewFromInt(10), Estado: model.EstadoCompletado})
	pedidos.agregar(model.Pedido{ClienteID: cliente.ID, Detalles: "c", MontoTotal: decimal.NewFromInt(10), Estado: model.EstadoCancelado})

	activos, err := svc.ListarActivos(context.Background())
	require.NoError(t, err)
	assert.Len(t, activos, 1)
}
