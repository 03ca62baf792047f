package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/auth"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

const bcryptCost = 12

// Service resolves identities. Accounts live in memory and are registered
// at startup; Login issues the JWT whose subject scopes every repository
// call afterwards.
type Service struct {
	jwtSvc   auth.JWTService
	validate *validator.Validator
	expiry   time.Duration

	mu       sync.RWMutex
	accounts map[string]*model.User // keyed by lowercased email
}

func NewService(jwtSvc auth.JWTService, validate *validator.Validator, expiry time.Duration) *Service {
	return &Service{
		jwtSvc:   jwtSvc,
		validate: validate,
		expiry:   expiry,
		accounts: make(map[string]*model.User),
	}
}

// Register adds an account and returns it. Used by startup seeding.
func (s *Service) Register(name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           fmt.Sprintf("usr_%s", uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	s.mu.Lock()
	s.accounts[strings.ToLower(email)] = user
	s.mu.Unlock()

	return user, nil
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	s.mu.RLock()
	user, ok := s.accounts[strings.ToLower(req.Email)]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.Unauthorized(fmt.Errorf("invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("invalid credentials"))
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		UserID:      user.ID,
	}, nil
}

// ValidateToken resolves the acting user from a bearer token.
func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	return claims, nil
}
