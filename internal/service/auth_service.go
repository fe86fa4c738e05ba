package service

import (
	"context"
	"errors"
	"sync"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/repository"
)

type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService struct {
	users  *UserService
	tokens TokenIssuer

	// decoyHash is compared against when the email is unknown so both
	// failure paths pay the hashing cost.
	decoyOnce sync.Once
	decoyHash string
}

func NewAuthService(users *UserService, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (int64, error) {
	return s.users.CreateUser(ctx, req)
}

// Login answers unknown emails and wrong passwords with the same error.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	invalid := apperrors.NewUnauthorizedError("invalid email or password")

	lookupCtx, cancel := withTimeout(ctx, s.users.timeout)
	defer cancel()

	user, err := s.users.repo.GetByEmail(lookupCtx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.users.hasher.Compare(s.decoy(), req.Password)
			return nil, invalid
		}
		return nil, storeError("login", err)
	}

	if err := s.users.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, invalid
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &models.LoginResult{User: user, Token: token}, nil
}

func (s *AuthService) decoy() string {
	s.decoyOnce.Do(func() {
		s.decoyHash, _ = s.users.hasher.Hash("catalog-login-decoy")
	})
	return s.decoyHash
}
