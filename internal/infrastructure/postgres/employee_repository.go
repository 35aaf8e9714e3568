package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para perfiles.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// List devuelve todos los perfiles, sin orden.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, is_admin FROM employees`)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.IsAdmin); err != nil {
			return nil, storeError("scan employee", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list employees", err)
	}
	return list, nil
}

// GetByID obtiene un perfil; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(ctx, `SELECT id, name, email, is_admin FROM employees WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get employee", err)
	}
	return &e, nil
}

// Set crea o reemplaza el perfil (upsert por id).
func (r *EmployeeRepo) Set(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, is_admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, is_admin = EXCLUDED.is_admin`
	if _, err := r.db.Exec(ctx, query, e.ID, e.Name, e.Email, e.IsAdmin); err != nil {
		return storeError("set employee", err)
	}
	return nil
}

// Delete elimina el perfil. La credencial asociada no se toca.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return storeError("delete employee", err)
	}
	return nil
}
