package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/agenda"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

// AppointmentUseCase fachada sobre la colección de agendamientos.
// Las lecturas nunca fallan hacia el llamador: si el almacén falla se sirve la última
// colección conocida marcada como stale. Las escrituras devuelven ErrSaveFailed o
// ErrDeleteFailed salvo entrada inválida o ID inexistente.
type AppointmentUseCase struct {
	repo  repository.AppointmentRepository
	cache snapshot[*entity.Appointment]
	log   *logger.Logger
	now   func() time.Time
}

// NewAppointmentUseCase construye el caso de uso con el puerto de persistencia.
func NewAppointmentUseCase(repo repository.AppointmentRepository, log *logger.Logger) *AppointmentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AppointmentUseCase{repo: repo, log: log.Named("appointments"), now: time.Now}
}

// Records devuelve la colección completa, sin orden. stale indica que la lectura falló.
func (uc *AppointmentUseCase) Records(ctx context.Context) (records []*entity.Appointment, stale bool) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura de agendamientos fallida, sirviendo copia anterior")
		return uc.cache.last(), true
	}
	uc.cache.store(list)
	return list, false
}

// List devuelve la colección completa ordenada por fecha y hora.
func (uc *AppointmentUseCase) List(ctx context.Context) *dto.AppointmentListResponse {
	records, stale := uc.Records(ctx)
	items := dto.FromAppointments(agenda.SortByDateThenTime(records))
	return &dto.AppointmentListResponse{Items: items, Total: len(items), Stale: stale}
}

// Agenda devuelve los agendamientos de una fecha ordenados por hora.
func (uc *AppointmentUseCase) Agenda(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if !entity.ValidDate(date) {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
	}
	records, stale := uc.Records(ctx)
	items := dto.FromAppointments(agenda.Day(records, date))
	return &dto.AppointmentListResponse{Items: items, Total: len(items), Date: date, Stale: stale}, nil
}

// Create persiste un agendamiento nuevo. CreatedBy es el nombre del actor y CreatedAt
// el instante actual.
func (uc *AppointmentUseCase) Create(ctx context.Context, actor *entity.Employee, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := checkAppointment(in); err != nil {
		return nil, err
	}
	a := &entity.Appointment{CreatedAt: uc.now().UTC()}
	applyRequest(a, in, actor)
	if err := uc.repo.Create(ctx, a); err != nil {
		uc.log.Error().Err(err).Msg("alta de agendamiento fallida")
		return nil, writeError(err, domain.ErrSaveFailed)
	}
	out := dto.FromAppointment(a)
	return &out, nil
}

// Update sobrescribe todos los campos editables. CreatedBy pasa a ser quien guarda;
// CreatedAt se conserva.
func (uc *AppointmentUseCase) Update(ctx context.Context, actor *entity.Employee, id string, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if err := checkAppointment(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("lectura de agendamiento fallida")
		return nil, writeError(err, domain.ErrSaveFailed)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	a := &entity.Appointment{ID: id, CreatedAt: current.CreatedAt}
	applyRequest(a, in, actor)
	if err := uc.repo.Update(ctx, a); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("edición de agendamiento fallida")
		return nil, writeError(err, domain.ErrSaveFailed)
	}
	out := dto.FromAppointment(a)
	return &out, nil
}

// Delete elimina el agendamiento, sin cascada.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("baja de agendamiento fallida")
		return writeError(err, domain.ErrDeleteFailed)
	}
	return nil
}

func checkAppointment(in dto.AppointmentRequest) error {
	if !entity.ValidDate(in.Date) {
		return fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	if !entity.ValidTime(in.Time) {
		return fmt.Errorf("%w: hora %q", domain.ErrInvalidInput, in.Time)
	}
	if in.Value.Value != nil && in.Value.Value.IsNegative() {
		return fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	return nil
}

func applyRequest(a *entity.Appointment, in dto.AppointmentRequest, actor *entity.Employee) {
	a.Date = in.Date
	a.Time = in.Time
	a.ClientName = strings.TrimSpace(in.ClientName)
	a.ClientPhone = strings.TrimSpace(in.ClientPhone)
	a.CarModel = strings.TrimSpace(in.CarModel)
	a.Service = strings.TrimSpace(in.Service)
	a.Value = in.Value.Value
	a.IsInsurance = in.IsInsurance
	if actor != nil {
		a.CreatedBy = actor.Name
	}
}

// writeError conserva NotFound y Validation; el resto se reduce al error genérico.
func writeError(err, generic error) error {
	mapped := ports.ToDomain(err)
	switch domain.KindOf(mapped) {
	case domain.KindNotFound, domain.KindValidation:
		return mapped
	}
	return errors.Join(generic, err)
}
