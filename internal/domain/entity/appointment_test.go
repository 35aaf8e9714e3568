package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

func TestValidTime(t *testing.T) {
	for _, s := range []string{"00:00", "09:00", "23:59"} {
		assert.True(t, entity.ValidTime(s), s)
	}
	for _, s := range []string{"9:00", "09:0", "24:00", "9h", "", "09:00:00"} {
		assert.False(t, entity.ValidTime(s), s)
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, entity.ValidDate("2024-02-29"))
	for _, s := range []string{"2024-5-10", "2024-05-1", "2023-02-29", "10/05/2024", ""} {
		assert.False(t, entity.ValidDate(s), s)
	}
}

func TestAppointmentAmount_AusenteEsCero(t *testing.T) {
	var a entity.Appointment
	assert.True(t, a.Amount().IsZero())

	v := decimal.NewFromInt(150)
	a.Value = &v
	assert.True(t, a.Amount().Equal(v))
}
