package services

import (
	"context"
	"sync"

	"canopy/internal/api"
	"canopy/internal/domain"
	"canopy/internal/logging"
)

// AuthService tracks the signed-in user for the lifetime of the process.
// A nil user means anonymous; Loading is true only during the initial
// session probe.
type AuthService struct {
	mu      sync.Mutex
	api     *APIService
	user    *domain.User
	loading bool
}

// NewAuthService creates a new AuthService
func NewAuthService(apiService *APIService) *AuthService {
	return &AuthService{
		api:     apiService,
		loading: true,
	}
}

// User returns the current user, or nil when anonymous
func (s *AuthService) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether the initial session probe is still in flight
func (s *AuthService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated reports whether a user is signed in
func (s *AuthService) IsAuthenticated() bool {
	return s.User() != nil
}

// CheckSession probes the backend for an existing session. A rejected
// session leaves the service anonymous without surfacing an error; only
// transport-level failures are logged.
func (s *AuthService) CheckSession(ctx context.Context) {
	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		if !api.IsAuthError(err) {
			logging.Logger.Warn("Session check failed", "error", err)
		}
		s.user = nil
		return
	}
	s.user = user
}

// Login authenticates and stores the resulting user
func (s *AuthService) Login(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	user, err := s.api.Login(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	return user, nil
}

// Register creates an account and stores the resulting user
func (s *AuthService) Register(ctx context.Context, payload domain.LoginPayload) (*domain.User, error) {
	user, err := s.api.Register(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	return user, nil
}

// Logout clears the stored user. The clear is optimistic: it happens
// immediately and does not depend on any backend acknowledgement.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	logging.Logger.Info("Signed out")
}
