package dto

// CatalogItemResponse entrada de catálogo (tela, operador o motivo).
type CatalogItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// CreateCatalogItemRequest alta de una entrada de catálogo.
type CreateCatalogItemRequest struct {
	Name string `json:"nome"`
}
