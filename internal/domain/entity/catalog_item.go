package entity

// CatalogItem entrada de catálogo. Las tres listas (telas, operadores y
// motivos) comparten exactamente la misma forma: id asignado por el store
// y un nombre validado de 1 a 100 caracteres.
type CatalogItem struct {
	ID   int64
	Name string
}
