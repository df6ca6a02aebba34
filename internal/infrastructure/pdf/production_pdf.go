// Package pdf genera el reporte final de producción de una aeronave en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Modelo + Código      │  Cliente + Fecha de entrega │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Tipo / Capacidad / Alcance / Avance                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIEZAS: Nombre | Tipo | Proveedor | Estado                 │
//	│  ETAPAS: Orden | Nombre | Plazo | Estado | Funcionarios     │
//	│  PRUEBAS: Tipo | Resultado                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el código de la aeronave                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/jhoicas/aerocode/internal/application/report"
	"github.com/jhoicas/aerocode/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// ProductionPDF genera el reporte de producción y devuelve sus bytes.
func (g *MarotoPDFGenerator) ProductionPDF(a *entity.Aircraft, client, deliveryDate string) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("pdf: aeronave nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de producción "+a.Code, true).
		WithAuthor("aerocode", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(a, client, deliveryDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PIEZAS"))
	m.AddRows(tableHeaderRow([]string{"Nombre", "Tipo", "Proveedor", "Estado"}, []int{4, 2, 4, 2}))
	if len(a.Parts) == 0 {
		m.AddRows(emptyRow("Ninguna pieza registrada."))
	}
	for _, p := range a.Parts {
		m.AddRows(tableRow([]string{p.Name, p.Type, p.Supplier, p.Status}, []int{4, 2, 4, 2}))
	}

	m.AddRows(sectionRow("ETAPAS"))
	m.AddRows(tableHeaderRow([]string{"Orden", "Nombre", "Plazo", "Estado", "Funcionarios"}, []int{1, 3, 2, 2, 4}))
	if len(a.Stages) == 0 {
		m.AddRows(emptyRow("Ninguna etapa registrada."))
	}
	for _, s := range a.Stages {
		m.AddRows(tableRow([]string{
			fmt.Sprint(s.Order), s.Name, s.Deadline, string(s.Status), employeeNames(s),
		}, []int{1, 3, 2, 2, 4}))
	}

	m.AddRows(sectionRow("PRUEBAS"))
	m.AddRows(tableHeaderRow([]string{"Tipo", "Resultado"}, []int{6, 6}))
	if len(a.Tests) == 0 {
		m.AddRows(emptyRow("Ninguna prueba registrada."))
	}
	for _, t := range a.Tests {
		m.AddRows(tableRow([]string{t.Type, t.Result}, []int{6, 6}))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(a))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: modelo + código (izq) y cliente + fecha de entrega (der).
func headerRow(a *entity.Aircraft, client, deliveryDate string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(a.Model, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+a.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE FINAL DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(client, "-"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Entrega: "+nonEmpty(deliveryDate, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// detailsRow: datos técnicos y avance de etapas.
func detailsRow(a *entity.Aircraft) core.Row {
	progress := report.Progress(a)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA AERONAVE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Capacidad: %d pasajeros   |   Alcance: %d km   |   Avance: %d/%d (%s%%)",
				a.Type, a.Capacity, a.Range, progress.Completed, progress.Total, progress.Percent,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
	))
}

// footerRow: QR con el código de la aeronave para identificarla en planta.
func footerRow(a *entity.Aircraft) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(a.Code, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Aeronave "+a.Code, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8, Left: 3, Color: colorPrimary,
			}),
			text.New("Documento generado por aerocode.", props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func employeeNames(s *entity.Stage) string {
	if len(s.Employees) == 0 {
		return "-"
	}
	names := make([]string, 0, len(s.Employees))
	for _, e := range s.Employees {
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}
