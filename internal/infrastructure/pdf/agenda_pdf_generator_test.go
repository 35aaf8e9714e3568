package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/report"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/stats"
	"github.com/jhoicas/agenda-api/internal/infrastructure/pdf"
)

func TestGenerateAgendaPDF(t *testing.T) {
	v := decimal.RequireFromString("320.50")
	day := []*entity.Appointment{
		{ID: "a", Date: "2024-05-10", Time: "08:00", ClientName: "Carlos", CarModel: "Gol", Service: "Parabrisas", Value: &v, IsInsurance: true},
		{ID: "b", Date: "2024-05-10", Time: "09:30", ClientName: "Marta"},
	}
	doc := report.Document{
		Title:        "Agenda del día",
		Date:         "2024-05-10",
		Appointments: day,
		Summary:      stats.Aggregate(day, nil),
		GeneratedAt:  time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC),
		Stale:        true,
	}

	b, err := pdf.NewMarotoAgendaGenerator("AUTOCAR").GenerateAgendaPDF(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateAgendaPDF_DiaSinAgendamientos(t *testing.T) {
	b, err := pdf.NewMarotoAgendaGenerator("").GenerateAgendaPDF(context.Background(), report.Document{Date: "2024-05-10"})

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
