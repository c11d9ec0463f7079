package dto

type CrearClienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=120"`
	Telefono string `json:"telefono" validate:"required,min=6,max=20"`
}
