package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

type UserService struct {
	repo  ports.UserRepository
	guard ownershipGuard
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		guard: newOwnershipGuard("user", audit, log),
		log:   log,
	}
}

func (s *UserService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.ListResult[*domain.User], error) {
	page, limit := normalizePage(in.Page, in.Limit)
	users, total, err := s.repo.List(ctx, ports.UserFilter{
		Role:   in.Role,
		Search: strings.TrimSpace(in.Search),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return newListResult(users, total, page, limit), nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// AuthorizeUpdate reports whether actor may edit the profile of account id:
// domain.ErrUserNotFound first, then domain.ErrNotOwner.
func (s *UserService) AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.guard.precheck(actor, "update", user)
}

// UpdateProfile changes profile fields of account id. A member may edit only
// their own profile; admins may edit any.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Identity, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.check(actor, "update", user); err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.guard.done(actor, "update", user.ID, user)
	return user, nil
}

// DeleteUser removes account id. Members may close their own account; admins
// may remove any.
func (s *UserService) DeleteUser(ctx context.Context, actor domain.Identity, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.check(actor, "delete", user); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("actor_id", actor.ID).Msg("user deleted")
	s.guard.done(actor, "delete", user.ID, user)
	return nil
}

// ChangeRole sets the role of account id. The caller is expected to sit
// behind an admin-only role gate.
func (s *UserService) ChangeRole(ctx context.Context, actor domain.Identity, id string, role string) (*domain.User, error) {
	newRole, ok := domain.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("change role: %w: %q", domain.ErrInvalidRole, role)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == newRole {
		return user, nil
	}

	previous := user.Role
	user.Role = newRole
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("actor_id", actor.ID).
		Str("from", string(previous)).
		Str("to", string(newRole)).
		Msg("role changed")
	s.guard.record(actor, "change_role", user.ID, user.ID)
	return user, nil
}
