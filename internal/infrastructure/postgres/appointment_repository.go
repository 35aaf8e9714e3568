package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, date, time, client_name, client_phone, car_model, service, value, is_insurance, created_by, created_at`

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	db Querier
}

// NewAppointmentRepository construye el adaptador de persistencia para agendamientos.
func NewAppointmentRepository(db Querier) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

// List devuelve la colección completa, sin filtros ni orden.
func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments`)
	if err != nil {
		return nil, storeError("list appointments", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, storeError("scan appointment", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list appointments", err)
	}
	return list, nil
}

// GetByID obtiene un agendamiento; (nil, nil) si no existe.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get appointment", err)
	}
	return a, nil
}

// Create asigna un UUID y persiste el registro.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	a.ID = uuid.New().String()
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Date, a.Time, a.ClientName, a.ClientPhone, a.CarModel, a.Service,
		a.Value, a.IsInsurance, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		a.ID = ""
		return storeError("insert appointment", err)
	}
	return nil
}

// Update sobrescribe los campos editables; created_at no se toca.
func (r *AppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET date = $2, time = $3, client_name = $4, client_phone = $5, car_model = $6,
		    service = $7, value = $8, is_insurance = $9, created_by = $10
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		a.ID, a.Date, a.Time, a.ClientName, a.ClientPhone, a.CarModel, a.Service,
		a.Value, a.IsInsurance, a.CreatedBy,
	)
	if err != nil {
		return storeError("update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.NewProviderError("update appointment", ports.CodeNotFound, nil)
	}
	return nil
}

// Delete elimina el registro. Un ID inexistente no es error.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id); err != nil {
		return storeError("delete appointment", err)
	}
	return nil
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID, &a.Date, &a.Time, &a.ClientName, &a.ClientPhone, &a.CarModel, &a.Service,
		&a.Value, &a.IsInsurance, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
