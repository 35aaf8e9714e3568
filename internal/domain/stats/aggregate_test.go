package stats_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/stats"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func appt(id, date, time string, value *decimal.Decimal, insurance bool) *entity.Appointment {
	return &entity.Appointment{ID: id, Date: date, Time: time, Value: value, IsInsurance: insurance}
}

func TestAggregate_Vacio(t *testing.T) {
	s := stats.Aggregate(nil, nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.InsurancePercentage.IsZero(), "sin registros el porcentaje es 0, no NaN")
}

func TestAggregate_UnSeguroDe150(t *testing.T) {
	records := []*entity.Appointment{appt("a", "2024-05-10", "09:00", dec("150"), true)}

	s := stats.Aggregate(records, nil)

	assert.Equal(t, 1, s.Count)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.InsurancePercentage.Equal(decimal.NewFromInt(100)))
}

func TestAggregate_ValoresAusentesSumanCero(t *testing.T) {
	records := []*entity.Appointment{
		appt("a", "2024-05-10", "09:00", dec("100.50"), false),
		appt("b", "2024-05-10", "10:00", nil, true),
		appt("c", "2024-05-11", "08:00", dec("49.50"), false),
		appt("d", "2024-05-11", "09:00", nil, false),
	}

	s := stats.Aggregate(records, nil)

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 1, s.InsuranceCount)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(150)), "revenue=%s", s.Revenue)
	assert.True(t, s.InsurancePercentage.Equal(decimal.NewFromInt(25)))
}

func TestAggregate_AlcancePorFecha(t *testing.T) {
	records := []*entity.Appointment{
		appt("a", "2024-05-10", "09:00", dec("100"), true),
		appt("b", "2024-05-10", "10:00", dec("50"), false),
		appt("c", "2024-05-11", "08:00", dec("30"), true),
	}

	s := stats.Aggregate(records, stats.OnDate("2024-05-10"))

	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.InsurancePercentage.Equal(decimal.NewFromInt(50)))

	none := stats.Aggregate(records, stats.OnDate("2030-01-01"))
	assert.Equal(t, 0, none.Count)
	assert.True(t, none.InsurancePercentage.IsZero())
}

func TestAggregate_PorcentajeEnRango(t *testing.T) {
	cases := [][]bool{
		{true}, {false}, {true, false, false}, {true, true, false}, {false, false, false, false, false, false, true},
	}
	for _, flags := range cases {
		var records []*entity.Appointment
		for _, f := range flags {
			records = append(records, appt("", "2024-01-01", "10:00", nil, f))
		}
		p := stats.Aggregate(records, nil).InsurancePercentage
		assert.True(t, p.GreaterThanOrEqual(decimal.Zero) && p.LessThanOrEqual(decimal.NewFromInt(100)), "porcentaje fuera de rango: %s", p)
	}
}

func TestSplitByInsurance_DisjuntoYCompleto(t *testing.T) {
	records := []*entity.Appointment{
		appt("a", "2024-05-10", "09:00", nil, true),
		appt("b", "2024-05-10", "10:00", nil, false),
		appt("c", "2024-05-11", "08:00", nil, true),
		appt("d", "2024-05-11", "09:00", nil, false),
	}

	insurance, particular := stats.SplitByInsurance(records)

	require.Len(t, insurance, 2)
	require.Len(t, particular, 2)
	assert.Equal(t, "a", insurance[0].ID)
	assert.Equal(t, "c", insurance[1].ID)
	assert.Equal(t, "b", particular[0].ID)
	assert.Equal(t, "d", particular[1].ID)
	for _, r := range insurance {
		assert.NotContains(t, particular, r)
	}
}

func TestSelect(t *testing.T) {
	records := []*entity.Appointment{
		appt("a", "2024-05-10", "09:00", nil, true),
		appt("b", "2024-05-10", "10:00", nil, false),
	}

	assert.Len(t, stats.Select(records, stats.FilterAll), 2)
	ins := stats.Select(records, stats.FilterInsurance)
	require.Len(t, ins, 1)
	assert.Equal(t, "a", ins[0].ID)
	par := stats.Select(records, stats.FilterParticular)
	require.Len(t, par, 1)
	assert.Equal(t, "b", par[0].ID)
}

func TestParseInsuranceFilter(t *testing.T) {
	for in, want := range map[string]stats.InsuranceFilter{
		"":           stats.FilterAll,
		"all":        stats.FilterAll,
		"insurance":  stats.FilterInsurance,
		"particular": stats.FilterParticular,
	} {
		got, err := stats.ParseInsuranceFilter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := stats.ParseInsuranceFilter("seguro")
	assert.Error(t, err)
}

func TestPie(t *testing.T) {
	s := stats.Summary{InsurancePercentage: decimal.NewFromInt(25)}

	slices := stats.Pie(s)

	require.Len(t, slices, 2)
	assert.Equal(t, "Seguro", slices[0].Name)
	assert.Equal(t, stats.FilterInsurance, slices[0].Filter)
	assert.True(t, slices[0].Percent.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "Particular", slices[1].Name)
	assert.True(t, slices[1].Percent.Equal(decimal.NewFromInt(75)))
}
