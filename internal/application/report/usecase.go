// Package report genera los documentos descargables del dashboard: agenda diaria en PDF
// y planilla de agendamientos.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/agenda"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/stats"
)

// RecordSource entrega la colección completa de agendamientos.
type RecordSource interface {
	Records(ctx context.Context) ([]*entity.Appointment, bool)
}

// ReportUseCase arma los documentos a partir de la colección completa.
type ReportUseCase struct {
	source RecordSource
	pdf    AgendaPDFGenerator
	xlsx   SpreadsheetExporter
	now    func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(source RecordSource, pdf AgendaPDFGenerator, xlsx SpreadsheetExporter) *ReportUseCase {
	return &ReportUseCase{source: source, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// DayAgendaPDF genera la agenda del día (hoy si date está vacío), ordenada por hora.
func (uc *ReportUseCase) DayAgendaPDF(ctx context.Context, date string) (pdfBytes []byte, filename string, err error) {
	date, err = uc.resolveDate(date)
	if err != nil {
		return nil, "", err
	}
	records, stale := uc.source.Records(ctx)
	day := agenda.Day(records, date)
	doc := Document{
		Title:        "Agenda del día",
		Date:         date,
		Appointments: day,
		Summary:      stats.Aggregate(day, nil),
		GeneratedAt:  uc.now(),
		Stale:        stale,
	}
	b, err := uc.pdf.GenerateAgendaPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	return b, fmt.Sprintf("agenda-%s.pdf", date), nil
}

// AppointmentsXLSX exporta la colección ordenada por fecha y hora; con date solo ese día.
func (uc *ReportUseCase) AppointmentsXLSX(ctx context.Context, date string) (xlsxBytes []byte, filename string, err error) {
	if date != "" {
		if !entity.ValidDate(date) {
			return nil, "", fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
		}
	}
	records, stale := uc.source.Records(ctx)
	if date != "" {
		records = agenda.FilterByDate(records, date)
	}
	doc := Document{
		Title:        "Agendamientos",
		Date:         date,
		Appointments: agenda.SortByDateThenTime(records),
		Summary:      stats.Aggregate(records, nil),
		GeneratedAt:  uc.now(),
		Stale:        stale,
	}
	b, err := uc.xlsx.ExportAppointments(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("report: exportar planilla: %w", err)
	}
	filename = "agendamientos.xlsx"
	if date != "" {
		filename = fmt.Sprintf("agendamientos-%s.xlsx", date)
	}
	return b, filename, nil
}

func (uc *ReportUseCase) resolveDate(date string) (string, error) {
	if date == "" {
		return uc.now().Format(entity.DateLayout), nil
	}
	if !entity.ValidDate(date) {
		return "", fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
	}
	return date, nil
}
