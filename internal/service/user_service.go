package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
	"github.com/shopfront/catalog-api/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, req *models.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type UserService struct {
	repo    UserRepository
	hasher  PasswordHasher
	timeout time.Duration
}

func NewUserService(repo UserRepository, hasher PasswordHasher, timeout time.Duration) *UserService {
	return &UserService{repo: repo, hasher: hasher, timeout: timeout}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (int64, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	userID, err := s.repo.Create(ctx, strings.TrimSpace(req.Name), normalizeEmail(req.Email), hash)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, apperrors.NewConflictError("user", "email already in use")
		}
		return 0, storeError("create user", err)
	}
	return userID, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, userError("get user", userID, err)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := s.repo.Update(ctx, req); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return apperrors.NewConflictError("user", "email already in use")
		}
		return userError("update user", req.ID, err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, userID); err != nil {
		return userError("delete user", userID, err)
	}
	return nil
}

func userError(op string, userID int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFoundError("user", strconv.FormatInt(userID, 10))
	}
	return storeError(op, err)
}
