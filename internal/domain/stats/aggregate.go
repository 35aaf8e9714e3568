// Package stats reduce colecciones de agendamientos a los indicadores del dashboard.
// Funciones puras: se recalculan sobre la colección completa en cada consulta.
package stats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary resultado de Aggregate.
type Summary struct {
	Count               int
	InsuranceCount      int
	Revenue             decimal.Decimal
	InsurancePercentage decimal.Decimal // 100 * InsuranceCount / Count, 0 si Count = 0
}

// Scope restringe los registros considerados por Aggregate.
type Scope func(*entity.Appointment) bool

// OnDate limita el alcance a una fecha YYYY-MM-DD.
func OnDate(date string) Scope {
	return func(a *entity.Appointment) bool { return a.Date == date }
}

// Aggregate calcula cantidad, facturación y porcentaje de seguro.
// scope nil considera todos los registros. Valores ausentes suman cero.
func Aggregate(records []*entity.Appointment, scope Scope) Summary {
	s := Summary{Revenue: decimal.Zero, InsurancePercentage: decimal.Zero}
	for _, r := range records {
		if r == nil || (scope != nil && !scope(r)) {
			continue
		}
		s.Count++
		s.Revenue = s.Revenue.Add(r.Amount())
		if r.IsInsurance {
			s.InsuranceCount++
		}
	}
	if s.Count > 0 {
		s.InsurancePercentage = decimal.NewFromInt(int64(s.InsuranceCount)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// SplitByInsurance separa los registros en (seguro, particular) conservando el orden.
func SplitByInsurance(records []*entity.Appointment) (insurance, particular []*entity.Appointment) {
	insurance = make([]*entity.Appointment, 0, len(records))
	particular = make([]*entity.Appointment, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if r.IsInsurance {
			insurance = append(insurance, r)
		} else {
			particular = append(particular, r)
		}
	}
	return insurance, particular
}

// InsuranceFilter es la porción seleccionada en el gráfico de torta.
type InsuranceFilter string

const (
	FilterAll        InsuranceFilter = "all"
	FilterInsurance  InsuranceFilter = "insurance"
	FilterParticular InsuranceFilter = "particular"
)

// ParseInsuranceFilter acepta "", all, insurance o particular.
func ParseInsuranceFilter(s string) (InsuranceFilter, error) {
	switch InsuranceFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterInsurance:
		return FilterInsurance, nil
	case FilterParticular:
		return FilterParticular, nil
	}
	return "", fmt.Errorf("filtro de seguro inválido %q", s)
}

// Select devuelve exactamente el grupo correspondiente al filtro.
func Select(records []*entity.Appointment, filter InsuranceFilter) []*entity.Appointment {
	insurance, particular := SplitByInsurance(records)
	switch filter {
	case FilterInsurance:
		return insurance
	case FilterParticular:
		return particular
	default:
		return records
	}
}

// Slice porción del gráfico de torta (porcentaje sobre el total).
type Slice struct {
	Name    string
	Filter  InsuranceFilter
	Percent decimal.Decimal
}

// Pie arma las dos porciones Seguro / Particular a partir de un resumen.
func Pie(s Summary) []Slice {
	return []Slice{
		{Name: "Seguro", Filter: FilterInsurance, Percent: s.InsurancePercentage},
		{Name: "Particular", Filter: FilterParticular, Percent: hundred.Sub(s.InsurancePercentage)},
	}
}
