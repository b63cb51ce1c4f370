package administrating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/prime-manager-api/internal/config"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "s3nha-do-admin"

func newTestService(t *testing.T, hash string) (*Service, *mocks.MockRecordStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)

	cfg := &config.Config{SecretKey: "chave-de-teste"}
	cfg.Auth.AdminPasswordHash = hash

	service := NewService(cfg, store).(*Service)
	return service, store
}

func hashPassword(t *testing.T) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login(t *testing.T) {
	hash := hashPassword(t)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "Senha correta", hash: hash, password: testPassword},
		{name: "Senha incorreta", hash: hash, password: "errada", wantErr: ErrInvalidCredentials},
		{name: "Senha vazia", hash: hash, password: "", wantErr: ErrInvalidCredentials},
		{name: "Hash não configurado", hash: "", password: testPassword, wantErr: ErrAdminNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t, tt.hash)

			token, err := service.Login(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsCredentialsError(err))
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, domain.RoleAdmin, claims.RoleID)
			assert.Equal(t, "admin", claims.Subject)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t, hashPassword(t))

	issuedAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }
	token, err := service.Login(testPassword)
	require.NoError(t, err)

	t.Run("Token dentro da validade", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt.Add(23 * time.Hour) }
		_, err := service.ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt.Add(25 * time.Hour) }
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token assinado com outra chave", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt }
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			Subject: "admin",
			RoleID:  domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("outra-chave"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_ResetDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("Recria as duas tabelas", func(t *testing.T) {
		service, store := newTestService(t, "")
		store.EXPECT().ResetAll(ctx).Return(nil)

		assert.NoError(t, service.ResetDatabase(ctx))
	})

	t.Run("Falha é propagada", func(t *testing.T) {
		service, store := newTestService(t, "")
		store.EXPECT().ResetAll(ctx).Return(domain.NewPersistenceError("store.reset_all", errors.New("falha")))

		err := service.ResetDatabase(ctx)
		assert.True(t, domain.IsPersistenceError(err))
	})
}
