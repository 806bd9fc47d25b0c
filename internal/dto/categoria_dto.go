package dto

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=60"`
}

type CategoriaListResponse struct {
	Data []string `json:"data"`
}
