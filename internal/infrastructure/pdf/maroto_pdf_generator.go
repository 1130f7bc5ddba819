// Package pdf implementa la confirmación imprimible de un contrato de compra
// de café verde.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Equity Coffee  │  N° Contrato + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: comprador / caficultor (ids de cuenta)             │
//	│  LOTE: nombre, origen, proceso, puntaje de taza             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sacos | Tamaño saco | Precio/kg | Valor total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS + QR de verificación + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 62, Green: 39, Blue: 35} // marrón café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ContractPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// ContractConfirmation genera el PDF de confirmación y devuelve sus bytes.
// lot puede ser nil si el lote fue eliminado después de firmar el contrato.
func (g *MarotoPDFGenerator) ContractConfirmation(contract *entity.Contract, lot *entity.CoffeeLot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Confirmación de Contrato "+contract.ContractNumber, true).
		WithAuthor("Equity Coffee", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(contract))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(contract))
	m.AddRows(lotRow(lot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de cantidades y precio
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(contract))

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(contract))

	// Notas + footer de verificación
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(contract) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° Contrato + Fecha (der).
func headerRow(contract *entity.Contract) core.Row {
	fecha := contract.ContractDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Equity Coffee", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Marketplace de café verde de origen", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONFIRMACIÓN DE CONTRATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(contract.ContractNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cuentas de comprador y caficultor.
func partiesRow(contract *entity.Contract) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PARTES DEL CONTRATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Comprador: %s   |   Caficultor: %s   |   Estado: %s",
				contract.BuyerID, contract.FarmerID, contract.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// lotRow: identidad del lote negociado; degrada a solo id si ya no existe.
func lotRow(lot *entity.CoffeeLot) core.Row {
	if lot == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("Lote: ya no disponible en el catálogo", props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		))
	}

	origen := lot.Country
	if lot.Region != nil && *lot.Region != "" {
		origen = *lot.Region + ", " + lot.Country
	}
	detalle := fmt.Sprintf("Origen: %s   |   Cosecha: %d", origen, lot.CropYear)
	if lot.Process != nil && *lot.Process != "" {
		detalle += "   |   Proceso: " + *lot.Process
	}
	if lot.CupScore != nil {
		detalle += "   |   Puntaje de taza: " + lot.CupScore.StringFixed(2)
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(lot.LotName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cantidades.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sacos", 2, align.Center),
		h("Tamaño saco (kg)", 3, align.Center),
		h("Precio/kg", 3, align.Right),
		h("Moneda", 1, align.Center),
		h("Valor total", 3, align.Right),
	)
}

// tableDetailRow: la única línea del contrato.
func tableDetailRow(contract *entity.Contract) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", contract.QuantityBags),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			contract.BagSizeKg.StringFixed(1),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			contract.PricePerKg.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			contract.Currency,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			contract.TotalValue.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: bloque de total alineado a la derecha.
func totalRow(contract *entity.Contract) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(
			contract.TotalValue.StringFixed(2)+" "+contract.Currency,
			props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			},
		)),
	)
}

// footerRows: notas del contrato + QR con el id para verificación.
func footerRows(contract *entity.Contract) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("NOTAS Y VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if contract.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(contract.Notes, props.Text{
				Size: 7.5, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}

	rows = append(rows, row.New(3))

	rows = append(rows, row.New(40).Add(
		col.New(4).Add(code.NewQr(contract.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para ubicar\neste contrato en la plataforma.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("CONFIRMACIÓN DE COMPRA\nDE CAFÉ VERDE", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 20,
				Left: 3, Color: colorPrimary,
			}),
		),
	))

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento resume los términos registrados en la plataforma al momento "+
				"de su emisión. Los valores quedan fijados en la fecha del contrato.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}
