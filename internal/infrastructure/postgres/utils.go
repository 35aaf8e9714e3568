package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/agenda-api/internal/application/ports"
)

// Códigos SQLSTATE que se traducen a códigos de proveedor.
const (
	sqlStateUniqueViolation       = "23505"
	sqlStateInsufficientPrivilege = "42501"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}
	return strings.Contains(err.Error(), sqlStateUniqueViolation)
}

func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateInsufficientPrivilege
}

// storeError envuelve un error de PostgreSQL como ProviderError con el código que
// corresponda (permission-denied o unavailable).
func storeError(op string, err error) error {
	if isPermissionDenied(err) {
		return ports.NewProviderError(op, ports.CodePermissionDenied, err)
	}
	return ports.NewProviderError(op, ports.CodeUnavailable, err)
}
