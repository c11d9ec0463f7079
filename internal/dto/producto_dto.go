package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=120"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	Inventario  int             `json:"inventario"  validate:"min=0"`
	CategoriaID string          `json:"categoriaId" validate:"required,uuid"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=2,max=120"`
	Precio      *decimal.Decimal `json:"precio"`
	Inventario  *int             `json:"inventario"  validate:"omitempty,min=0"`
	CategoriaID *string          `json:"categoriaId" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoConVentas decorates the catalog listing with today's units sold.
type ProductoConVentas struct {
	model.Producto
	CantidadVendida int `json:"cantidadVendida"`
}
