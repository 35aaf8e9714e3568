// Package memory implementa los puertos de persistencia en memoria. Se usa con
// STORE_DRIVER=memory (desarrollo local) y como dobles en los tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo colección de agendamientos en memoria. List devuelve los registros en
// orden de inserción; el llamador no debe asumir ningún orden.
type AppointmentRepo struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]entity.Appointment

	// Err, si no es nil, hace fallar todas las operaciones (tests).
	Err error
}

// NewAppointmentRepository construye el repositorio, opcionalmente con registros iniciales
// (los que no tienen ID reciben uno).
func NewAppointmentRepository(seed ...*entity.Appointment) *AppointmentRepo {
	r := &AppointmentRepo{items: make(map[string]entity.Appointment)}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		r.ids = append(r.ids, a.ID)
		r.items[a.ID] = *a
	}
	return r
}

func (r *AppointmentRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.Appointment, 0, len(r.ids))
	for _, id := range r.ids {
		a := r.items[id]
		out = append(out, &a)
	}
	return out, nil
}

func (r *AppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	a.ID = uuid.New().String()
	r.ids = append(r.ids, a.ID)
	r.items[a.ID] = *a
	return nil
}

func (r *AppointmentRepo) Update(_ context.Context, a *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	current, ok := r.items[a.ID]
	if !ok {
		return ports.NewProviderError("update appointment", ports.CodeNotFound, nil)
	}
	updated := *a
	updated.CreatedAt = current.CreatedAt
	r.items[a.ID] = updated
	return nil
}

func (r *AppointmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
