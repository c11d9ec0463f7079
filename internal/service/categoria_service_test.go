package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

func TestEliminarCategoriaConProductos(t *testing.T) {
	categorias := newStubCategoriaRepo()
	svc := NewCategoriaService(categorias)

	reposteria := categorias.agregar(model.Categoria{Nombre: "Repostería"})
	categorias.productos[reposteria.ID] = 3

	err := svc.Eliminar(context.Background(), reposteria.ID)

	var ocupada *ErrCategoriaConProductos
	require.ErrorAs(t, err, &ocupada)
	assert.Equal(t, int64(3), ocupada.Cantidad)
	assert.Contains(t, categorias.categorias, reposteria.ID)
}

func TestEliminarCategoriaVacia(t *testing.T) {
	categorias := newStubCategoriaRepo()
	svc := NewCategoriaService(categorias)

	vacia := categorias.agregar(model.Categoria{Nombre: "Temporada"})

	require.NoError(t, svc.Eliminar(context.Background(), vacia.ID))
	assert.NotContains(t, categorias.categorias, vacia.ID)
}

func TestEliminarCategoriaInexistente(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())
	err := svc.Eliminar(context.Background(), uuid.New())
	require.True(t, EsNotFound(err))
}

func TestActualizarCategoria(t *testing.T) {
	categorias := newStubCategoriaRepo()
	svc := NewCategoriaService(categorias)

	panaderia := categorias.agregar(model.Categoria{Nombre: "Panaderia"})

	actualizada, err := svc.Actualizar(context.Background(), panaderia.ID, dto.ActualizarCategoriaRequest{Nombre: "Panadería"})
	require.NoError(t, err)
	assert.Equal(t, "Panadería", actualizada.Nombre)
	assert.Equal(t, "Panadería", categorias.categorias[panaderia.ID].Nombre)
}
