package administrating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrAdminNotConfigured = errors.New("credencial de administrador não configurada")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrTokenIssue         = errors.New("erro ao gerar token de autenticação")
)

// Hash ausente responde como senha errada: o cliente não deve saber a diferença
var authErrorCodes = map[error]string{
	ErrInvalidCredentials: apiErrors.ErrInvalidCredentials,
	ErrAdminNotConfigured: apiErrors.ErrInvalidCredentials,
	ErrInvalidToken:       apiErrors.ErrInvalidToken,
	ErrExpiredToken:       apiErrors.ErrExpiredToken,
	ErrTokenIssue:         apiErrors.ErrInternalServer,
}

// AuthError carrega o código de API correspondente ao erro de autenticação
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrAdminNotConfigured)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

func newAuthError(base error, details string) *AuthError {
	code, ok := authErrorCodes[base]
	if !ok {
		code = apiErrors.ErrInternalServer
	}
	return &AuthError{Err: base, Code: code, Details: details}
}
