package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrUnauthorized           = errors.New("email o contraseña incorrectos")
	ErrMissingToken           = errors.New("token de sesión requerido")
	ErrInvalidToken           = errors.New("token inválido o sesión expirada")
	ErrTooManyRequests        = errors.New("demasiados intentos")
	ErrForbidden              = errors.New("acceso denegado")
	ErrIncompleteRegistration = errors.New("registro incompleto: contacte al administrador")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrPermissionDenied       = errors.New("permiso denegado por el almacén de datos")
	ErrSelfDelete             = errors.New("no puede eliminar su propia cuenta")
	ErrSaveFailed             = errors.New("error al guardar el agendamiento")
	ErrDeleteFailed           = errors.New("error al eliminar el agendamiento")
	ErrUnknown                = errors.New("error desconocido")
)

// ErrorKind es la taxonomía cerrada que ve la capa de presentación.
type ErrorKind string

const (
	KindAuthentication         ErrorKind = "AUTHENTICATION"
	KindMissingToken           ErrorKind = "MISSING_TOKEN"
	KindInvalidToken           ErrorKind = "INVALID_TOKEN"
	KindTooManyRequests        ErrorKind = "TOO_MANY_REQUESTS"
	KindIncompleteRegistration ErrorKind = "INCOMPLETE_REGISTRATION"
	KindDuplicateEmail         ErrorKind = "DUPLICATE_EMAIL"
	KindPermissionDenied       ErrorKind = "PERMISSION_DENIED"
	KindForbidden              ErrorKind = "FORBIDDEN"
	KindSelfDelete             ErrorKind = "SELF_DELETE"
	KindValidation             ErrorKind = "VALIDATION"
	KindNotFound               ErrorKind = "NOT_FOUND"
	KindSaveFailed             ErrorKind = "SAVE_FAILED"
	KindDeleteFailed           ErrorKind = "DELETE_FAILED"
	KindUnknown                ErrorKind = "UNKNOWN"
)

// KindOf clasifica cualquier error en un miembro de la taxonomía.
// nil no tiene clase y devuelve "".
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return KindAuthentication
	case errors.Is(err, ErrMissingToken):
		return KindMissingToken
	case errors.Is(err, ErrInvalidToken):
		return KindInvalidToken
	case errors.Is(err, ErrTooManyRequests):
		return KindTooManyRequests
	case errors.Is(err, ErrIncompleteRegistration):
		return KindIncompleteRegistration
	case errors.Is(err, ErrEmailAlreadyExists):
		return KindDuplicateEmail
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrSelfDelete):
		return KindSelfDelete
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrSaveFailed):
		return KindSaveFailed
	case errors.Is(err, ErrDeleteFailed):
		return KindDeleteFailed
	default:
		return KindUnknown
	}
}
