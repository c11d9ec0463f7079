package dto

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}

type ActualizarCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}
