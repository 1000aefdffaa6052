package entity

import "time"

// Tipos de movimiento tal como se almacenan en est_movimentacoes.
// Se conservan los literales en portugués de la base original para que el
// historial existente siga siendo legible sin migración.
const (
	MovementTypeEntrada = "Entrada" // entrada de stock
	MovementTypeSaida   = "Saída"   // salida de stock
)

// Movement representa un movimiento de inventario de telas.
// Las referencias a tela, motivo y operador son por nombre (desnormalizadas):
// borrar o renombrar una entrada de catálogo no rompe la lectura del historial.
type Movement struct {
	ID        string
	CreatedAt time.Time // asignado por el store, UTC
	Type      string    // Entrada | Saída
	Fabric    string    // nombre de la tela
	Quantity  int       // 1..999999 al momento del registro
	Reason    string    // nombre del motivo
	Operator  string    // nombre del operador
}

// MovementFilter filtros opcionales para listar movimientos.
// DateTo se extiende al último instante de ese día calendario (inclusivo).
type MovementFilter struct {
	Fabric   string
	DateFrom *time.Time
	DateTo   *time.Time
}
