// Package administrating cuida do acesso de administrador e das operações destrutivas
package administrating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/config"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTTL     = 24 * time.Hour
	adminSubject = "admin"
)

type Administrator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResetDatabase(ctx context.Context) error
}

type Service struct {
	cfg   *config.Config
	store repository.RecordStore
	now   func() time.Time
}

func NewService(cfg *config.Config, store repository.RecordStore) Administrator {
	return &Service{
		cfg:   cfg,
		store: store,
		now:   time.Now,
	}
}

// Login compara a senha com o hash bcrypt configurado e emite um token de administrador.
// Qualquer divergência resulta no mesmo erro de credenciais, sem outros detalhes.
func (s *Service) Login(password string) (string, error) {
	if s.cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("Tentativa de login sem ADMIN_PASSWORD_HASH configurado")
		return "", newAuthError(ErrAdminNotConfigured, "")
	}

	if password == "" {
		return "", newAuthError(ErrInvalidCredentials, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(password)); err != nil {
		logrus.Info("Login de administrador recusado")
		return "", newAuthError(ErrInvalidCredentials, "")
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", newAuthError(ErrTokenIssue, err.Error())
	}

	return token, nil
}

func (s *Service) generateJWT() (string, error) {
	now := s.now()
	claims := domain.Claims{
		Subject: adminSubject,
		RoleID:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newAuthError(ErrExpiredToken, "")
		}
		return nil, newAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, newAuthError(ErrInvalidToken, "")
	}

	return claims, nil
}

// ResetDatabase recria as duas tabelas vazias; uma falha não deixa nenhuma delas apagada
func (s *Service) ResetDatabase(ctx context.Context) error {
	if err := s.store.ResetAll(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao reinicializar a base de dados")
		return err
	}

	log.ForContext(ctx).Warn("Base de dados reinicializada pelo administrador")
	return nil
}
