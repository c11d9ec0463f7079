package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles. ADMIN sees every transaction in reports; CAJERO only its own.
const (
	RolAdmin  = "ADMIN"
	RolCajero = "CAJERO"
)

type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Nombre       string    `gorm:"not null" json:"nombre"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'CAJERO'" json:"rol"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreadoEn     time.Time `gorm:"column:creado_en;autoCreateTime" json:"creadoEn"`
}

func (Usuario) TableName() string { return "usuarios" }
