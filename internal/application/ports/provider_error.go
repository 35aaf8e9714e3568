package ports

import (
	"errors"
	"fmt"

	"github.com/jhoicas/agenda-api/internal/domain"
)

// Códigos de error de los proveedores externos (identidad y almacén de documentos).
const (
	CodeEmailAlreadyInUse = "auth/email-already-in-use"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeWeakPassword      = "auth/weak-password"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeSessionRevoked    = "auth/session-revoked"
	CodePermissionDenied  = "permission-denied"
	CodeNotFound          = "not-found"
	CodeUnavailable       = "unavailable"
)

// ProviderError error nativo de un proveedor, identificado por código.
type ProviderError struct {
	Code string
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError construye un ProviderError.
func NewProviderError(op, code string, err error) *ProviderError {
	return &ProviderError{Op: op, Code: code, Err: err}
}

// CodeOf devuelve el código del ProviderError de la cadena, o "" si no hay.
func CodeOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// ToDomain traduce un error de proveedor a la taxonomía de dominio. Es el único punto
// que conoce los códigos nativos; el error original queda envuelto para los logs.
func ToDomain(err error) error {
	if err == nil {
		return nil
	}
	code := CodeOf(err)
	if code == "" && domain.KindOf(err) != domain.KindUnknown {
		return err // ya es un error de dominio
	}
	var target error
	switch code {
	case CodeEmailAlreadyInUse:
		target = domain.ErrEmailAlreadyExists
	case CodeInvalidCredential, CodeSessionRevoked:
		target = domain.ErrUnauthorized
	case CodeWeakPassword, CodeInvalidEmail:
		target = domain.ErrInvalidInput
	case CodePermissionDenied:
		target = domain.ErrPermissionDenied
	case CodeNotFound:
		target = domain.ErrNotFound
	default:
		target = domain.ErrUnknown
	}
	return fmt.Errorf("%w: %v", target, err)
}
