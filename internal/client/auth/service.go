package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetops/fieldsync/internal/client/api"
	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/validation"
	pkgapi "github.com/assetops/fieldsync/pkg/api"
)

// ErrNotAuthenticated возвращается, когда нет сохраненной сессии
// или токен истек.
var ErrNotAuthenticated = errors.New("not authenticated, run login first")

// Service предоставляет функции авторизации техника
type Service struct {
	apiClient api.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login выполняет аутентификацию и сохраняет сессию локально.
// Требует сеть: офлайн-логин невозможен, токен выдает только сервер.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.SessionData, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.SessionData{
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   tokenExpiry(resp),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username)

	return session, nil
}

// Logout удаляет локальную сессию. Сервер не уведомляется:
// access token просто истекает по своему exp.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("Logged out")

	return nil
}

// CurrentSession возвращает сохраненную сессию.
// Returns ErrNotAuthenticated if no session is stored or the token
// already expired.
func (s *Service) CurrentSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ExpiresAt > 0 && session.ExpiresAt <= time.Now().Unix() {
		return nil, ErrNotAuthenticated
	}

	return session, nil
}

// tokenExpiry извлекает exp из JWT без проверки подписи: клиенту
// подпись проверять нечем, нужен только срок жизни. При любой
// проблеме падаем обратно на expires_in из ответа.
func tokenExpiry(resp *pkgapi.TokenResponse) int64 {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims)
	if err == nil {
		if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
			return exp.Unix()
		}
	}

	if resp.ExpiresIn > 0 {
		return time.Now().Unix() + resp.ExpiresIn
	}

	return 0
}
