package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

const bcryptCost = 12

var (
	ErrMissingFields = errors.New("service: required fields missing")
	ErrInvalidRole   = errors.New("service: invalid role")
	ErrEmailTaken    = errors.New("service: email already registered")
	ErrUserNotFound  = errors.New("service: user not found")
	ErrSelfDelete    = errors.New("service: cannot delete own account")
)

// UserService provides the super-admin account management operations.
type UserService struct {
	Store store.Store

	now func() time.Time
}

func NewUserService(st store.Store) *UserService {
	return &UserService{Store: st, now: time.Now}
}

// CreateParams carries the fields for a new account. All of them are
// required.
type CreateParams struct {
	Email    string
	Password string
	Role     string
	Name     string
}

func (s *UserService) CreateUser(ctx context.Context, p CreateParams) (domain.PublicUser, error) {
	if p.Email == "" || p.Password == "" || p.Role == "" || p.Name == "" {
		return domain.PublicUser{}, ErrMissingFields
	}

	role := domain.Role(p.Role)
	if !role.Valid() {
		return domain.PublicUser{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcryptCost)
	if err != nil {
		return domain.PublicUser{}, err
	}

	user := domain.User{
		Email:        strings.ToLower(strings.TrimSpace(p.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Name:         p.Name,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.Store.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, ErrEmailTaken
		}
		return domain.PublicUser{}, err
	}

	slogx.FromContext(ctx).Info("user created",
		slog.Int("user_id", created.ID),
		slog.String("role", created.Role.String()),
	)
	return created.Public(), nil
}

// UpdateParams carries a partial update. Nil or zero-valued fields are
// left untouched; an unrecognised role is silently ignored.
type UpdateParams struct {
	Name     string
	Role     string
	IsActive *bool
	Password string
}

func (s *UserService) UpdateUser(ctx context.Context, id int, p UpdateParams) (domain.PublicUser, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}

	if p.Name != "" {
		user.Name = p.Name
	}
	if role := domain.Role(p.Role); role.Valid() {
		user.Role = role
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcryptCost)
		if err != nil {
			return domain.PublicUser{}, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.Store.Users().Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}

	slogx.FromContext(ctx).Info("user updated", slog.Int("user_id", user.ID))
	return user.Public(), nil
}

// DeleteUser removes an account. Deleting your own account is refused.
// Existence is checked before the self-delete guard so an unknown id is
// reported as not found even when it matches the caller.
func (s *UserService) DeleteUser(ctx context.Context, id, callerID int) error {
	if _, err := s.Store.Users().GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if id == callerID {
		return ErrSelfDelete
	}

	if err := s.Store.Users().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("user deleted",
		slog.Int("user_id", id),
		slog.Int("deleted_by", callerID),
	)
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.Store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (domain.PublicUser, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}
