package agenda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/domain/agenda"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

func ids(list []*entity.Appointment) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func sample() []*entity.Appointment {
	return []*entity.Appointment{
		{ID: "a", Date: "2024-05-11", Time: "10:00"},
		{ID: "b", Date: "2024-05-10", Time: "10:00"},
		{ID: "c", Date: "2024-05-10", Time: "09:00"},
		{ID: "d", Date: "2024-05-11", Time: "08:30"},
		{ID: "e", Date: "2024-05-10", Time: "09:00"},
	}
}

func TestSortByDateThenTime(t *testing.T) {
	in := sample()

	out := agenda.SortByDateThenTime(in)

	assert.Equal(t, []string{"c", "e", "b", "d", "a"}, ids(out))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(in), "la entrada no se modifica")
}

func TestSortByDateThenTime_NueveAntesQueDiez(t *testing.T) {
	in := []*entity.Appointment{
		{ID: "late", Date: "2024-05-10", Time: "10:00"},
		{ID: "early", Date: "2024-05-10", Time: "09:00"},
	}
	assert.Equal(t, []string{"early", "late"}, ids(agenda.SortByDateThenTime(in)))
}

func TestSortByDateThenTime_Idempotente(t *testing.T) {
	once := agenda.SortByDateThenTime(sample())
	twice := agenda.SortByDateThenTime(once)
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortByDateThenTime_Estable(t *testing.T) {
	in := []*entity.Appointment{
		{ID: "1", Date: "2024-05-10", Time: "09:00"},
		{ID: "2", Date: "2024-05-10", Time: "09:00"},
		{ID: "3", Date: "2024-05-10", Time: "09:00"},
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids(agenda.SortByDateThenTime(in)))
}

func TestFilterByDate(t *testing.T) {
	out := agenda.FilterByDate(sample(), "2024-05-10")

	assert.Equal(t, []string{"b", "c", "e"}, ids(out), "conserva el orden de entrada")
	for _, a := range out {
		assert.Equal(t, "2024-05-10", a.Date)
	}
	assert.Empty(t, agenda.FilterByDate(sample(), "2030-01-01"))
}

func TestDay(t *testing.T) {
	out := agenda.Day(sample(), "2024-05-10")
	require.Len(t, out, 3)
	assert.Equal(t, []string{"c", "e", "b"}, ids(out))
}
