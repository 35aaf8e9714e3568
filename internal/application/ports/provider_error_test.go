package ports_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain"
)

func TestToDomain(t *testing.T) {
	cases := map[string]domain.ErrorKind{
		ports.CodeEmailAlreadyInUse: domain.KindDuplicateEmail,
		ports.CodeInvalidCredential: domain.KindAuthentication,
		ports.CodeSessionRevoked:    domain.KindAuthentication,
		ports.CodeWeakPassword:      domain.KindValidation,
		ports.CodeInvalidEmail:      domain.KindValidation,
		ports.CodePermissionDenied:  domain.KindPermissionDenied,
		ports.CodeNotFound:          domain.KindNotFound,
		ports.CodeUnavailable:       domain.KindUnknown,
		"storage/quota-exceeded":    domain.KindUnknown,
	}
	for code, want := range cases {
		err := ports.ToDomain(ports.NewProviderError("op", code, errors.New("native")))
		assert.Equal(t, want, domain.KindOf(err), "código %s", code)
	}
}

func TestToDomain_ConservaErrorOriginal(t *testing.T) {
	native := errors.New("native")
	err := ports.ToDomain(ports.NewProviderError("op", ports.CodePermissionDenied, native))

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Contains(t, err.Error(), "native")
	assert.Equal(t, "", ports.CodeOf(err), "el error traducido no expone el ProviderError")
}

func TestToDomain_ErroresDeDominioPasanIntactos(t *testing.T) {
	assert.Nil(t, ports.ToDomain(nil))
	assert.Same(t, domain.ErrSelfDelete, ports.ToDomain(domain.ErrSelfDelete))
	assert.Equal(t, domain.KindUnknown, domain.KindOf(ports.ToDomain(errors.New("x"))))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ports.CodeNotFound, ports.CodeOf(ports.NewProviderError("op", ports.CodeNotFound, nil)))
	assert.Equal(t, "", ports.CodeOf(errors.New("x")))
}
