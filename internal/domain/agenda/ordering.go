// Package agenda contiene el orden canónico y los filtros por fecha de los agendamientos
// (servicio de dominio, sin I/O).
package agenda

import (
	"slices"
	"strings"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// SortByDateThenTime devuelve una copia ordenada por fecha y luego por hora (ascendente,
// comparación lexicográfica). El orden es estable: empates en ambas claves conservan
// el orden relativo de entrada.
func SortByDateThenTime(records []*entity.Appointment) []*entity.Appointment {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b *entity.Appointment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// SortByTime devuelve una copia ordenada solo por hora (estable).
func SortByTime(records []*entity.Appointment) []*entity.Appointment {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b *entity.Appointment) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// FilterByDate devuelve los registros con Date == date, en el orden de entrada.
func FilterByDate(records []*entity.Appointment, date string) []*entity.Appointment {
	out := make([]*entity.Appointment, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// Day es la vista de agenda diaria: los registros de la fecha ordenados por hora.
func Day(records []*entity.Appointment, date string) []*entity.Appointment {
	return SortByTime(FilterByDate(records, date))
}
