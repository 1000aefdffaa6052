package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento.
// Los nombres JSON conservan el esquema en portugués de la base original.
type RegisterMovementRequest struct {
	Type     string `json:"tipo_movimentacao"` // Entrada | Saída
	Fabric   string `json:"tecido"`
	Quantity int    `json:"quantidade"`
	Reason   string `json:"motivo"`
	Operator string `json:"operador"`
}

// MovementResponse movimiento persistido.
type MovementResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"tipo_movimentacao"`
	Fabric    string    `json:"tecido"`
	Quantity  int       `json:"quantidade"`
	Reason    string    `json:"motivo"`
	Operator  string    `json:"operador"`
}

// MovementListResponse listado de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// BatchDeleteRequest ids de movimientos a eliminar en una sola acción.
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BatchDeleteResponse resultado de una eliminación por lote: cada id se
// intenta de forma independiente y los fallos se cuentan aparte.
type BatchDeleteResponse struct {
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}
