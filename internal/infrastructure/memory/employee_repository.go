package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo perfiles en memoria. Cuenta las llamadas para que los tests verifiquen
// que una operación rechazada no tocó el almacén.
type EmployeeRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Employee

	// SetErrs se consumen en orden, uno por llamada a Set (nil = éxito).
	SetErrs   []error
	ListErr   error
	GetErr    error
	DeleteErr error

	SetCalls    int
	DeleteCalls int
}

// NewEmployeeRepository construye el repositorio con perfiles iniciales.
func NewEmployeeRepository(seed ...*entity.Employee) *EmployeeRepo {
	r := &EmployeeRepo{items: make(map[string]entity.Employee)}
	for _, e := range seed {
		r.items[e.ID] = *e
	}
	return r
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make([]*entity.Employee, 0, len(r.items))
	for _, e := range r.items {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) Set(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SetCalls++
	if len(r.SetErrs) > 0 {
		err := r.SetErrs[0]
		r.SetErrs = r.SetErrs[1:]
		if err != nil {
			return err
		}
	}
	r.items[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.DeleteCalls++
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	delete(r.items, id)
	return nil
}
