package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

func TestCrearClienteTelefonoDuplicado(t *testing.T) {
	clientes := newStubClienteRepo()
	clientes.agregar(model.Cliente{Nombre: "María", Telefono: "70000001"})
	svc := NewClienteService(clientes)

	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:   "Otra María",
		Telefono: "70000001",
	})
	require.ErrorIs(t, err, ErrTelefonoDuplicado)
}

func TestBuscarPorTelefono(t *testing.T) {
	clientes := newStubClienteRepo()
	maria := clientes.agregar(model.Cliente{Nombre: "María", Telefono: "70000001"})
	svc := NewClienteService(clientes)

	encontrado, err := svc.BuscarPorTelefono(context.Background(), "70000001")
	require.NoError(t, err)
	assert.Equal(t, maria.ID, encontrado.ID)

	_, err = svc.BuscarPorTelefono(context.Background(), "79999999")
	require.True(t, EsNotFound(err))
}
