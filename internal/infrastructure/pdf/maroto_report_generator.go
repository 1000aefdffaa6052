// Package pdf implementa la versión imprimible del historial de movimientos
// del taller usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango filtrado + fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Tela | Cant. | Motivo | Operador     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: saldo por tela (entradas − salidas), descendente  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tallertex/telas-api/internal/application/report"
	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.MovementPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF y devuelve sus bytes. Un conjunto de
// movimientos vacío produce un documento válido con las tablas vacías.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, data *report.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Histórico de Movimentações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de movimientos
	m.AddRows(movementHeaderRow())
	for _, r := range movementRows(data.Movements) {
		m.AddRows(r)
	}

	// Resumen de saldos
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceTitleRow())
	for _, r := range balanceRows(data.Balances) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango filtrado + fecha de generación (der).
func headerRow(data *report.ReportData) core.Row {
	rango := "Todo el historial"
	if data.Filter.DateFrom != nil || data.Filter.DateTo != nil {
		from, to := "inicio", "hoy"
		if data.Filter.DateFrom != nil {
			from = data.Filter.DateFrom.Format("02/01/2006")
		}
		if data.Filter.DateTo != nil {
			to = data.Filter.DateTo.Format("02/01/2006")
		}
		rango = from + " — " + to
	}
	if data.Filter.Fabric != "" {
		rango += "  ·  Tela: " + data.Filter.Fabric
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Histórico de Movimentações", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estoque de telas del taller", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// movementHeaderRow: cabecera de la tabla de movimientos.
func movementHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Center),
		h("Tela", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Motivo", 2, align.Left),
		h("Operador", 2, align.Left),
	)
}

// movementRows: una fila por movimiento, más recientes primero.
func movementRows(movements []entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mov := range movements {
		tipoColor := colorPrimary
		if mov.Type == entity.MovementTypeSaida {
			tipoColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mov.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mov.Type,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: tipoColor},
			)),
			col.New(3).Add(text.New(
				mov.Fabric,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(mov.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				mov.Reason,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mov.Operator,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// balanceTitleRow: título del bloque de resumen.
func balanceTitleRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("SALDO POR TELA (entradas − salidas)", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// balanceRows: una fila por tela, orden descendente por saldo. Los saldos
// negativos se marcan en rojo.
func balanceRows(balances []ledger.FabricBalance) []core.Row {
	result := make([]core.Row, 0, len(balances))
	for _, b := range balances {
		valueColor := colorGray
		if b.Quantity < 0 {
			valueColor = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(8).Add(text.New(
				b.Fabric,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				strconv.Itoa(b.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: valueColor},
			)),
		))
	}
	return result
}
