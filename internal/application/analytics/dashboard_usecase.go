// Package analytics contiene el caso de uso del dashboard de negocio: indicadores
// globales y por fecha, gráfico seguro/particular y listas filtradas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/agenda"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/stats"
)

// RecordSource entrega la colección completa de agendamientos (stale si la lectura falló).
type RecordSource interface {
	Records(ctx context.Context) ([]*entity.Appointment, bool)
}

// DashboardUseCase arma el resumen del dashboard.
//
// No hay agregación en el almacén: cada llamada trae la colección completa y recalcula
// todo en memoria con el paquete stats.
type DashboardUseCase struct {
	source RecordSource
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source RecordSource) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
//   - Overall: toda la colección; el gráfico de torta sale de aquí.
//   - DateStats: solo los registros de q.Date (hoy si viene vacío).
//   - Appointments: toda la colección o solo la fecha si q.UseDateFilter.
//   - InsuranceAppointments: la porción seleccionada sobre la colección completa.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, q dto.DashboardQuery) (*dto.DashboardSummaryDTO, error) {
	filter, err := stats.ParseInsuranceFilter(q.Insurance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date := q.Date
	if date == "" {
		date = uc.now().Format(entity.DateLayout)
	}
	if !entity.ValidDate(date) {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
	}

	records, stale := uc.source.Records(ctx)
	overall := stats.Aggregate(records, nil)
	byDate := stats.Aggregate(records, stats.OnDate(date))

	displayed := records
	if q.UseDateFilter {
		displayed = agenda.FilterByDate(records, date)
	}

	return &dto.DashboardSummaryDTO{
		Overall:               toStatsDTO(overall),
		Date:                  date,
		DateStats:             toStatsDTO(byDate),
		Pie:                   toPieDTO(stats.Pie(overall)),
		UseDateFilter:         q.UseDateFilter,
		Appointments:          dto.FromAppointments(agenda.SortByDateThenTime(displayed)),
		InsuranceFilter:       string(filter),
		InsuranceAppointments: dto.FromAppointments(agenda.SortByDateThenTime(stats.Select(records, filter))),
		Stale:                 stale,
	}, nil
}

// toStatsDTO: en cada alcance "today" y "total" son el mismo conteo.
func toStatsDTO(s stats.Summary) dto.StatsDTO {
	return dto.StatsDTO{
		TodayAppointments:   s.Count,
		TodayRevenue:        s.Revenue,
		TotalAppointments:   s.Count,
		InsurancePercentage: s.InsurancePercentage.Round(2),
	}
}

func toPieDTO(slices []stats.Slice) []dto.PieSliceDTO {
	out := make([]dto.PieSliceDTO, 0, len(slices))
	for _, s := range slices {
		out = append(out, dto.PieSliceDTO{Name: s.Name, Filter: string(s.Filter), Value: s.Percent.Round(2)})
	}
	return out
}
