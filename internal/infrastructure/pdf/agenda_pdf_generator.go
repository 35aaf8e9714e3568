// Package pdf genera la agenda diaria del taller en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: AUTOCAR + título      │  Fecha de la agenda      │
//	│  ──────────────────────────────────────────────────────  │
//	│  RESUMEN: cantidad / facturación / % seguro               │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Cliente | Teléfono | Vehículo | Servicio   │
//	│         | Valor | Tipo                                    │
//	│  ──────────────────────────────────────────────────────  │
//	│  FOOTER: generado en / aviso de datos desactualizados     │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/agenda-api/internal/application/report"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 8, Green: 145, Blue: 178}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 18, Blue: 60}
)

var _ report.AgendaPDFGenerator = (*MarotoAgendaGenerator)(nil)

// MarotoAgendaGenerator implementa report.AgendaPDFGenerator usando Maroto v2.
type MarotoAgendaGenerator struct {
	shopName string
}

// NewMarotoAgendaGenerator construye el generador con el nombre del taller en el header.
func NewMarotoAgendaGenerator(shopName string) *MarotoAgendaGenerator {
	if shopName == "" {
		shopName = "AUTOCAR"
	}
	return &MarotoAgendaGenerator{shopName: shopName}
}

// GenerateAgendaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoAgendaGenerator) GenerateAgendaPDF(_ context.Context, doc report.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(doc.Appointments) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin agendamientos para esta fecha.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableRows(doc.Appointments)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func (g *MarotoAgendaGenerator) headerRow(doc report.Document) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(displayDate(doc.Date), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

// summaryRow: los mismos indicadores que el dashboard, restringidos al día.
func summaryRow(doc report.Document) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5}),
		)
	}
	return row.New(13).Add(
		cell("Agendamientos", fmt.Sprintf("%d", doc.Summary.Count)),
		cell("Facturación", money.Format(doc.Summary.Revenue)),
		cell("Seguro", money.FormatPercent(doc.Summary.InsurancePercentage)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 1, align.Center),
		h("Cliente", 2, align.Left),
		h("Teléfono", 2, align.Left),
		h("Vehículo", 2, align.Left),
		h("Servicio", 2, align.Left),
		h("Valor", 2, align.Right),
		h("Tipo", 1, align.Center),
	)
}

func tableRows(list []*entity.Appointment) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, a := range list {
		value := "—"
		if a.Value != nil {
			value = money.Format(*a.Value)
		}
		kind := "Particular"
		if a.IsInsurance {
			kind = "Seguro"
		}
		cell := func(s string, size int, al align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: al, Top: 1, Left: 1, Right: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(a.Time, 1, align.Center),
			cell(nonEmpty(a.ClientName, "—"), 2, align.Left),
			cell(nonEmpty(a.ClientPhone, "—"), 2, align.Left),
			cell(nonEmpty(a.CarModel, "—"), 2, align.Left),
			cell(nonEmpty(a.Service, "—"), 2, align.Left),
			cell(value, 2, align.Right),
			cell(kind, 1, align.Center),
		))
	}
	return rows
}

func footerRows(doc report.Document) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Generado el "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)),
	}
	if doc.Stale {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Atención: no se pudo leer el almacén; los datos pueden estar desactualizados.", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorAlert, Top: 1,
			}),
		)))
	}
	return rows
}

// displayDate convierte YYYY-MM-DD a DD/MM/YYYY; si no parsea la deja igual.
func displayDate(date string) string {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
