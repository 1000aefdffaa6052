// Package ledger contiene las funciones puras de agregación sobre movimientos:
// totales del día, saldo por tela y saldo de una tela puntual. No muta la
// entrada ni toca la base de datos; los handlers le pasan registros ya
// filtrados por el repositorio.
package ledger

import (
	"sort"
	"time"

	"github.com/tallertex/telas-api/internal/domain/entity"
)

// DailySummary totales de entradas y salidas de un día calendario.
type DailySummary struct {
	Entries int
	Exits   int
}

// FabricBalance saldo con signo de una tela: entradas menos salidas.
// Puede ser negativo (se vendió más de lo registrado), cero o positivo.
type FabricBalance struct {
	Fabric   string
	Quantity int
}

// SummarizeToday suma cantidades por tipo para los movimientos cuyo CreatedAt
// cae dentro del día calendario UTC de now, ambos extremos inclusivos
// (23:59:59.999 cuenta; el 00:00:00 del día siguiente ya no).
// Entrada vacía devuelve {0, 0}.
func SummarizeToday(records []entity.Movement, now time.Time) DailySummary {
	start := now.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var s DailySummary
	for _, m := range records {
		at := m.CreatedAt.UTC()
		if at.Before(start) || !at.Before(end) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntrada:
			s.Entries += m.Quantity
		case entity.MovementTypeSaida:
			s.Exits += m.Quantity
		}
	}
	return s
}

// SummarizeByFabric agrupa por nombre de tela (comparación exacta, sensible a
// mayúsculas) y acumula el saldo con signo: Entrada suma, cualquier otro tipo
// resta. El resultado se ordena por cantidad descendente; los empates conservan
// el orden de primera aparición. Telas con saldo neto cero aparecen igual si
// tienen al menos un movimiento.
func SummarizeByFabric(records []entity.Movement) []FabricBalance {
	totals := make(map[string]int, len(records))
	order := make([]string, 0, len(records))

	for _, m := range records {
		if _, seen := totals[m.Fabric]; !seen {
			order = append(order, m.Fabric)
		}
		if m.Type == entity.MovementTypeEntrada {
			totals[m.Fabric] += m.Quantity
		} else {
			totals[m.Fabric] -= m.Quantity
		}
	}

	result := make([]FabricBalance, 0, len(order))
	for _, fabric := range order {
		result = append(result, FabricBalance{Fabric: fabric, Quantity: totals[fabric]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Quantity > result[j].Quantity
	})
	return result
}

// BalanceForFabric devuelve el saldo de una sola tela sobre el conjunto dado.
// Una tela sin movimientos devuelve 0; no es un error.
func BalanceForFabric(records []entity.Movement, fabric string) int {
	balance := 0
	for _, m := range records {
		if m.Fabric != fabric {
			continue
		}
		if m.Type == entity.MovementTypeEntrada {
			balance += m.Quantity
		} else {
			balance -= m.Quantity
		}
	}
	return balance
}
