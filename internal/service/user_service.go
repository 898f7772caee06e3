package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"carrental/internal/models"
	"carrental/internal/repository"
)

type CreateUserInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber *string
	RoleID      *int64
}

// UpdateUserInput is a partial update; nil fields keep their stored values.
type UpdateUserInput struct {
	FullName    *string
	Email       *string
	Password    *string
	PhoneNumber *string
}

type UserService struct {
	users  UserStore
	roles  RoleStore
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users UserStore, roles RoleStore, hasher PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, log: log}
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (UserProfile, error) {
	if err := s.checkUnique(ctx, 0, &input.Email, input.PhoneNumber); err != nil {
		return UserProfile{}, err
	}

	var (
		role models.Role
		err  error
	)
	if input.RoleID != nil {
		role, err = s.roles.GetByID(ctx, *input.RoleID)
		if err != nil {
			return UserProfile{}, translate(err, "Role", *input.RoleID, "")
		}
	} else {
		role, err = s.roles.GetOrCreate(ctx, models.RoleUser)
		if err != nil {
			return UserProfile{}, fmt.Errorf("resolve default role: %w", err)
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return UserProfile{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		RoleID:       role.ID,
	})
	if err != nil {
		return UserProfile{}, userWriteError(err, nil, input.Email, input.PhoneNumber)
	}
	return toProfile(user, role.Name), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return UserProfile{}, translate(err, "User", id, "")
	}
	return s.withRole(ctx, user)
}

func (s *UserService) List(ctx context.Context) ([]UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	roleNames := make(map[int64]string)
	out := make([]UserProfile, 0, len(users))
	for _, u := range users {
		name, ok := roleNames[u.RoleID]
		if !ok {
			role, err := s.roles.GetByID(ctx, u.RoleID)
			if err != nil {
				return nil, fmt.Errorf("resolve role %d: %w", u.RoleID, err)
			}
			name = role.Name
			roleNames[u.RoleID] = name
		}
		out = append(out, toProfile(u, name))
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return UserProfile{}, translate(err, "User", id, "")
	}

	var email, phone *string
	if input.Email != nil && *input.Email != user.Email {
		email = input.Email
	}
	if input.PhoneNumber != nil && (user.PhoneNumber == nil || *input.PhoneNumber != *user.PhoneNumber) {
		phone = input.PhoneNumber
	}
	if err := s.checkUnique(ctx, id, email, phone); err != nil {
		return UserProfile{}, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return UserProfile{}, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return UserProfile{}, userWriteError(err, id, user.Email, user.PhoneNumber)
	}
	return s.withRole(ctx, updated)
}

// ChangeRole reassigns a user's role. It takes effect on the user's next
// request since identities are resolved per request.
func (s *UserService) ChangeRole(ctx context.Context, id, roleID int64) (UserProfile, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return UserProfile{}, translate(err, "Role", roleID, "")
	}
	if err := s.users.UpdateRole(ctx, id, roleID); err != nil {
		return UserProfile{}, translate(err, "User", id, "")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return UserProfile{}, translate(err, "User", id, "")
	}
	s.log.Info().Int64("user_id", id).Str("role", role.Name).Msg("user role changed")
	return toProfile(user, role.Name), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return translate(s.users.Delete(ctx, id), "User", id, "")
}

func (s *UserService) checkUnique(ctx context.Context, id int64, email, phone *string) error {
	if email != nil {
		taken, err := s.users.ExistsByEmail(ctx, *email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return emailTaken(*email)
		}
	}
	if phone != nil {
		taken, err := s.users.ExistsByPhone(ctx, *phone, id)
		if err != nil {
			return fmt.Errorf("check phone: %w", err)
		}
		if taken {
			return phoneTaken(*phone)
		}
	}
	return nil
}

func (s *UserService) withRole(ctx context.Context, user models.User) (UserProfile, error) {
	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return UserProfile{}, fmt.Errorf("resolve role %d: %w", user.RoleID, err)
	}
	return toProfile(user, role.Name), nil
}
