package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
)

// kindStatus mapea la taxonomía de dominio a HTTP.
var kindStatus = map[domain.ErrorKind]int{
	domain.KindAuthentication:         fiber.StatusUnauthorized,
	domain.KindMissingToken:           fiber.StatusUnauthorized,
	domain.KindInvalidToken:           fiber.StatusUnauthorized,
	domain.KindTooManyRequests:        fiber.StatusTooManyRequests,
	domain.KindIncompleteRegistration: fiber.StatusUnauthorized,
	domain.KindDuplicateEmail:         fiber.StatusConflict,
	domain.KindPermissionDenied:       fiber.StatusForbidden,
	domain.KindForbidden:              fiber.StatusForbidden,
	domain.KindSelfDelete:             fiber.StatusBadRequest,
	domain.KindValidation:             fiber.StatusBadRequest,
	domain.KindNotFound:               fiber.StatusNotFound,
	domain.KindSaveFailed:             fiber.StatusInternalServerError,
	domain.KindDeleteFailed:           fiber.StatusInternalServerError,
	domain.KindUnknown:                fiber.StatusInternalServerError,
}

// kindMessage mensaje fijo por clase; el detalle del error no sale al cliente
// salvo en VALIDATION.
var kindMessage = map[domain.ErrorKind]string{
	domain.KindAuthentication:         "email o contraseña incorrectos",
	domain.KindMissingToken:           "Authorization header requerido (Bearer <token>)",
	domain.KindInvalidToken:           "token inválido o sesión expirada",
	domain.KindTooManyRequests:        "demasiados intentos, espere un momento",
	domain.KindIncompleteRegistration: "registro incompleto: contacte al administrador",
	domain.KindDuplicateEmail:         "el email ya está registrado; no reintente, contacte al soporte",
	domain.KindPermissionDenied:       "permiso denegado por el almacén de datos: revise las reglas de seguridad",
	domain.KindForbidden:              "acceso restringido a administradores",
	domain.KindSelfDelete:             "no puede eliminar su propia cuenta",
	domain.KindNotFound:               "recurso no encontrado",
	domain.KindSaveFailed:             "error al guardar el agendamiento",
	domain.KindDeleteFailed:           "error al eliminar el agendamiento",
	domain.KindUnknown:                "error interno, intente nuevamente",
}

// writeError responde con dto.ErrorResponse según la clase del error.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		kind, status = domain.KindUnknown, fiber.StatusInternalServerError
	}
	resp := dto.ErrorResponse{Code: string(kind), Message: kindMessage[kind]}
	if kind == domain.KindValidation {
		resp.Message = err.Error()
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			resp.Message = "datos inválidos"
			resp.Fields = make(map[string]string, len(verrs))
			for _, fe := range verrs {
				resp.Fields[fe.Field()] = fe.Tag()
			}
		}
	}
	return c.Status(status).JSON(resp)
}
