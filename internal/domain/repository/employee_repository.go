package repository

import (
	"context"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para los perfiles de funcionarios.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	// GetByID devuelve (nil, nil) si el perfil no existe.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// Set crea o reemplaza el perfil con la clave employee.ID.
	Set(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
