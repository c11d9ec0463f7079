package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies products. Deletion is hard but refused while any
// product still references the category (see service.DeletionPolicy).
type Categoria struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre   string    `gorm:"uniqueIndex;not null" json:"nombre"`
	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime" json:"creadoEn"`
}

func (Categoria) TableName() string { return "categorias" }
