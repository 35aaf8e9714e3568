// Package xlsx exporta agendamientos a planillas Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/agenda-api/internal/application/report"
)

// SheetName nombre de la hoja con los agendamientos.
const SheetName = "Agendamientos"

var headers = []string{
	"Fecha", "Hora", "Cliente", "Teléfono", "Vehículo", "Servicio",
	"Valor", "Seguro", "Creado por", "Creado en",
}

var _ report.SpreadsheetExporter = (*Exporter)(nil)

// Exporter implementa report.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportAppointments escribe una fila por agendamiento (en el orden recibido) y una
// fila final de totales.
func (e *Exporter) ExportAppointments(_ context.Context, doc report.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}

	rowNo := 2
	for _, a := range doc.Appointments {
		var value any
		if a.Value != nil {
			value, _ = a.Value.Float64()
		}
		insurance := "No"
		if a.IsInsurance {
			insurance = "Sí"
		}
		values := []any{
			a.Date, a.Time, a.ClientName, a.ClientPhone, a.CarModel, a.Service,
			value, insurance, a.CreatedBy, a.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			if err := setCell(f, i+1, rowNo, v); err != nil {
				return nil, err
			}
		}
		rowNo++
	}

	revenue, _ := doc.Summary.Revenue.Float64()
	if err := setCell(f, 1, rowNo, "Total"); err != nil {
		return nil, err
	}
	if err := setCell(f, 2, rowNo, doc.Summary.Count); err != nil {
		return nil, err
	}
	if err := setCell(f, 7, rowNo, revenue); err != nil {
		return nil, err
	}

	// Estilo de columna primero: SetRowStyle pisa el de las celdas de esas filas
	if err := f.SetColStyle(SheetName, "G", amount); err != nil {
		return nil, fmt.Errorf("xlsx: estilo valores: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	if err := f.SetRowStyle(SheetName, rowNo, rowNo, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}
	_ = f.SetColWidth(SheetName, "C", "F", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("xlsx: escribir %s: %w", cell, err)
	}
	return nil
}
