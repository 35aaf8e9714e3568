package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

// MinPasswordLength longitud mínima de contraseña para cuentas nuevas.
const MinPasswordLength = 6

// DefaultProfileRetryDelay espera antes del único reintento de escritura del perfil.
const DefaultProfileRetryDelay = 500 * time.Millisecond

// EmployeeUseCase fachada sobre el directorio de funcionarios: perfiles locales más
// credenciales en el proveedor de identidad.
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	identity   ports.IdentityProvider
	cache      snapshot[*entity.Employee]
	retryDelay time.Duration
	log        *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso. retryDelay <= 0 usa DefaultProfileRetryDelay.
func NewEmployeeUseCase(repo repository.EmployeeRepository, identity ports.IdentityProvider, retryDelay time.Duration, log *logger.Logger) *EmployeeUseCase {
	if retryDelay <= 0 {
		retryDelay = DefaultProfileRetryDelay
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeUseCase{repo: repo, identity: identity, retryDelay: retryDelay, log: log.Named("employees")}
}

// List devuelve el directorio completo, sin orden garantizado. Una lectura fallida
// sirve la última lista conocida.
func (uc *EmployeeUseCase) List(ctx context.Context) *dto.EmployeeListResponse {
	list, err := uc.repo.List(ctx)
	stale := false
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura de funcionarios fallida, sirviendo copia anterior")
		list, stale = uc.cache.last(), true
	} else {
		uc.cache.store(list)
	}
	items := dto.FromEmployees(list)
	return &dto.EmployeeListResponse{Items: items, Total: len(items), Stale: stale}
}

// Create da de alta un funcionario:
//  1. crea la credencial en el proveedor (email duplicado: ErrEmailAlreadyExists, sin perfil);
//  2. escribe el perfil con clave uid, reintentando una vez tras retryDelay;
//  3. cierra la sesión de quien creó la cuenta, que debe volver a autenticarse.
//
// Si el perfil no se puede escribir la credencial queda huérfana; quien intente entrar
// con ella verá el aviso de registro incompleto.
func (uc *EmployeeUseCase) Create(ctx context.Context, actingSessionID string, in dto.CreateEmployeeRequest) (*dto.CreateEmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nombre, email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}

	id, err := uc.identity.CreateUser(ctx, email, in.Password)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("alta de credencial rechazada")
		return nil, ports.ToDomain(err)
	}

	profile := &entity.Employee{ID: id.UID, Name: name, Email: email, IsAdmin: in.IsAdmin}
	if err := uc.writeProfile(ctx, profile); err != nil {
		return nil, err
	}

	if actingSessionID != "" {
		if err := uc.identity.SignOut(ctx, actingSessionID); err != nil {
			uc.log.Error().Err(err).Str("session_id", actingSessionID).Msg("no se pudo cerrar la sesión del creador")
		}
	}

	uc.log.Info().Str("uid", profile.ID).Bool("admin", profile.IsAdmin).Msg("funcionario creado")
	return &dto.CreateEmployeeResponse{Employee: dto.FromEmployee(profile), Reauthenticate: true}, nil
}

func (uc *EmployeeUseCase) writeProfile(ctx context.Context, profile *entity.Employee) error {
	err := uc.repo.Set(ctx, profile)
	if err == nil {
		return nil
	}
	uc.log.Warn().Err(err).Str("uid", profile.ID).Dur("delay", uc.retryDelay).Msg("escritura de perfil fallida, reintentando")

	t := time.NewTimer(uc.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errors.Join(domain.ErrUnknown, ctx.Err())
	case <-t.C:
	}

	if err := uc.repo.Set(ctx, profile); err != nil {
		uc.log.Error().Err(err).Str("uid", profile.ID).Msg("escritura de perfil fallida tras reintento")
		return ports.ToDomain(err)
	}
	return nil
}

// Delete elimina solo el perfil; la credencial se conserva. Un actor no puede
// eliminarse a sí mismo (se rechaza antes de tocar el almacén).
func (uc *EmployeeUseCase) Delete(ctx context.Context, actor *entity.Employee, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if actor != nil && actor.ID == id {
		return domain.ErrSelfDelete
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("uid", id).Msg("baja de funcionario fallida")
		return ports.ToDomain(err)
	}
	return nil
}

// Bootstrap crea el primer administrador cuando el directorio está vacío.
// Devuelve false si ya existe algún perfil. Si la credencial ya existía (perfil perdido)
// se recupera su uid iniciando sesión con la contraseña dada.
func (uc *EmployeeUseCase) Bootstrap(ctx context.Context, name, email, password string) (bool, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("listar funcionarios: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < MinPasswordLength {
		return false, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}

	var uid string
	id, err := uc.identity.CreateUser(ctx, email, password)
	switch {
	case err == nil:
		uid = id.UID
	case ports.CodeOf(err) == ports.CodeEmailAlreadyInUse:
		res, sErr := uc.identity.SignIn(ctx, email, password)
		if sErr != nil {
			return false, fmt.Errorf("recuperar credencial existente: %w", ports.ToDomain(sErr))
		}
		uid = res.Identity.UID
		if err := uc.identity.SignOut(ctx, res.Identity.SessionID); err != nil {
			uc.log.Error().Err(err).Str("session_id", res.Identity.SessionID).Msg("no se pudo cerrar la sesión de recuperación")
		}
	default:
		return false, fmt.Errorf("crear credencial: %w", ports.ToDomain(err))
	}

	if name = strings.TrimSpace(name); name == "" {
		name = email
	}
	profile := &entity.Employee{ID: uid, Name: name, Email: email, IsAdmin: true}
	if err := uc.writeProfile(ctx, profile); err != nil {
		return false, fmt.Errorf("escribir perfil: %w", err)
	}
	uc.log.Info().Str("uid", uid).Msg("administrador inicial creado")
	return true, nil
}
