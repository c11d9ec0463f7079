package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item sold at the counter.
// Inventario never goes below zero: every sale decrements it with a
// conditional guard inside the settlement transaction.
type Producto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre        string          `gorm:"index;not null" json:"nombre"`
	Precio        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	Inventario    int             `gorm:"not null;default:0;check:inventario >= 0" json:"inventario"`
	Activo        bool            `gorm:"not null;default:true" json:"activo"`
	CategoriaID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"categoriaId"`
	CreadoEn      time.Time       `gorm:"column:creado_en;autoCreateTime" json:"creadoEn"`
	ActualizadoEn time.Time       `gorm:"column:actualizado_en;autoUpdateTime" json:"actualizadoEn"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

func (Producto) TableName() string { return "productos" }
