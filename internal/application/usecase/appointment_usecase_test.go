package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func newAppointmentUC(seed ...*entity.Appointment) (*AppointmentUseCase, *memory.AppointmentRepo) {
	repo := memory.NewAppointmentRepository(seed...)
	uc := NewAppointmentUseCase(repo, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func amount(s string) dto.Amount {
	d := decimal.RequireFromString(s)
	return dto.NewAmount(&d)
}

func itemIDs(items []dto.AppointmentResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestAppointmentList_OrdenadoPorFechaYHora(t *testing.T) {
	uc, _ := newAppointmentUC(
		&entity.Appointment{ID: "a", Date: "2024-05-11", Time: "09:00"},
		&entity.Appointment{ID: "b", Date: "2024-05-10", Time: "10:00"},
		&entity.Appointment{ID: "c", Date: "2024-05-10", Time: "09:00"},
	)

	out := uc.List(context.Background())

	assert.False(t, out.Stale)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, []string{"c", "b", "a"}, itemIDs(out.Items))
}

func TestAppointmentList_FalloSirveCopiaAnterior(t *testing.T) {
	uc, repo := newAppointmentUC(&entity.Appointment{ID: "a", Date: "2024-05-10", Time: "09:00"})

	// Sin lectura previa exitosa la copia es vacía (no nil).
	repo.Err = errors.New("sin conexión")
	out := uc.List(context.Background())
	assert.True(t, out.Stale)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)

	repo.Err = nil
	require.Len(t, uc.List(context.Background()).Items, 1)

	repo.Err = errors.New("sin conexión")
	out = uc.List(context.Background())
	assert.True(t, out.Stale)
	assert.Equal(t, []string{"a"}, itemIDs(out.Items))
}

func TestAppointmentAgenda(t *testing.T) {
	uc, _ := newAppointmentUC(
		&entity.Appointment{ID: "a", Date: "2024-05-10", Time: "11:00"},
		&entity.Appointment{ID: "b", Date: "2024-05-11", Time: "08:00"},
		&entity.Appointment{ID: "c", Date: "2024-05-10", Time: "08:00"},
	)

	out, err := uc.Agenda(context.Background(), "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", out.Date)
	assert.Equal(t, []string{"c", "a"}, itemIDs(out.Items))

	_, err = uc.Agenda(context.Background(), "10/05/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAppointmentCreate(t *testing.T) {
	uc, repo := newAppointmentUC()
	actor := &entity.Employee{ID: "u1", Name: "Ana"}

	out, err := uc.Create(context.Background(), actor, dto.AppointmentRequest{
		Date: "2024-05-10", Time: "09:00", ClientName: " Carlos ", Value: amount("150"), IsInsurance: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana", out.CreatedBy)
	assert.Equal(t, fixedNow, out.CreatedAt)
	assert.Equal(t, "Carlos", out.ClientName)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Amount().Equal(decimal.NewFromInt(150)))
}

func TestAppointmentCreate_Validacion(t *testing.T) {
	uc, repo := newAppointmentUC()
	cases := []dto.AppointmentRequest{
		{Date: "2024-5-10", Time: "09:00"},
		{Date: "2024-05-10", Time: "9:00"},
		{Date: "2024-05-10", Time: "09:00", Value: amount("-1")},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), nil, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v", in)
	}
	list, _ := repo.List(context.Background())
	assert.Empty(t, list)
}

func TestAppointmentCreate_FalloEsGenerico(t *testing.T) {
	uc, repo := newAppointmentUC()
	repo.Err = errors.New("sin conexión")

	_, err := uc.Create(context.Background(), nil, dto.AppointmentRequest{Date: "2024-05-10", Time: "09:00"})

	assert.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.Equal(t, domain.KindSaveFailed, domain.KindOf(err))
}

func TestAppointmentUpdate_ConservaCreatedAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, repo := newAppointmentUC(&entity.Appointment{
		ID: "a", Date: "2024-05-10", Time: "09:00", ClientName: "Carlos", CreatedBy: "Ana", CreatedAt: created,
	})

	out, err := uc.Update(context.Background(), &entity.Employee{ID: "u2", Name: "Beto"}, "a", dto.AppointmentRequest{
		Date: "2024-05-12", Time: "15:00", ClientName: "Carlos", Service: "Parabrisas",
	})

	require.NoError(t, err)
	assert.Equal(t, "Beto", out.CreatedBy, "createdBy pasa a ser quien guarda")
	assert.Equal(t, created, out.CreatedAt)

	stored, _ := repo.GetByID(context.Background(), "a")
	assert.Equal(t, "2024-05-12", stored.Date)
	assert.Equal(t, "Parabrisas", stored.Service)
	assert.Nil(t, stored.Value, "la edición sobrescribe todos los campos")
	assert.Equal(t, created, stored.CreatedAt)
}

func TestAppointmentUpdate_Inexistente(t *testing.T) {
	uc, _ := newAppointmentUC()

	_, err := uc.Update(context.Background(), nil, "nope", dto.AppointmentRequest{Date: "2024-05-10", Time: "09:00"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentDelete(t *testing.T) {
	uc, repo := newAppointmentUC(&entity.Appointment{ID: "a", Date: "2024-05-10", Time: "09:00"})

	require.NoError(t, uc.Delete(context.Background(), "a"))
	list, _ := repo.List(context.Background())
	assert.Empty(t, list)

	require.NoError(t, uc.Delete(context.Background(), "a"), "eliminar un ID inexistente no es error")

	repo.Err = errors.New("sin conexión")
	err := uc.Delete(context.Background(), "b")
	assert.Equal(t, domain.KindDeleteFailed, domain.KindOf(err))
}
