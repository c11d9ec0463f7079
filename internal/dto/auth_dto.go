package dto

import "github.com/dussanclaurer/pepito-s-app/internal/model"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string        `json:"token"`
	Usuario model.Usuario `json:"usuario"`
}

type CrearUsuarioRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol"      validate:"required,oneof=ADMIN CAJERO"`
}

type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=120"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Rol      *string `json:"rol"      validate:"omitempty,oneof=ADMIN CAJERO"`
	Activo   *bool   `json:"activo"`
}
