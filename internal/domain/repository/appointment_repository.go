package repository

import (
	"context"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para la colección de agendamientos.
// No hay filtros ni orden en el almacén: List devuelve la colección completa.
type AppointmentRepository interface {
	List(ctx context.Context) ([]*entity.Appointment, error)
	// GetByID devuelve (nil, nil) si el registro no existe.
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	// Create asigna el ID y persiste el registro.
	Create(ctx context.Context, appointment *entity.Appointment) error
	// Update sobrescribe todos los campos editables; CreatedAt se conserva.
	// Un ID inexistente devuelve un error con código not-found.
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id string) error
}
