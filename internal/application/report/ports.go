package report

import (
	"context"
	"time"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/stats"
)

// Document datos de entrada de los generadores de reportes.
type Document struct {
	Title        string
	Date         string // vacío = toda la colección
	Appointments []*entity.Appointment
	Summary      stats.Summary
	GeneratedAt  time.Time
	Stale        bool
}

// AgendaPDFGenerator genera el PDF de la agenda de un día.
type AgendaPDFGenerator interface {
	GenerateAgendaPDF(ctx context.Context, doc Document) ([]byte, error)
}

// SpreadsheetExporter exporta agendamientos a una planilla.
type SpreadsheetExporter interface {
	ExportAppointments(ctx context.Context, doc Document) ([]byte, error)
}
