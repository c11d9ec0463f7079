package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a pre-order customer, looked up by phone at the counter.
// Telefono is unique so the POS phone search resolves to one record.
type Cliente struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre   string    `gorm:"index;not null" json:"nombre"`
	Telefono string    `gorm:"uniqueIndex;not null" json:"telefono"`
	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime" json:"creadoEn"`
}

func (Cliente) TableName() string { return "clientes" }
