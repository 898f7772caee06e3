package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"carrental/internal/events"
	"carrental/internal/models"
	"carrental/internal/repository"
	"carrental/internal/security"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

type TokenIssuer interface {
	Issue(email, role string) (string, error)
	Parse(token string) (*security.AccessClaims, error)
}

type RegisterInput struct {
	Email       string
	FullName    string
	Password    string
	PhoneNumber *string
}

type LoginResult struct {
	Token string
	User  UserProfile
}

// UserProfile is a user with its role name resolved.
type UserProfile struct {
	ID          int64
	FullName    string
	Email       string
	PhoneNumber *string
	Role        string
}

type AuthService struct {
	users  UserStore
	roles  RoleStore
	hasher PasswordHasher
	tokens TokenIssuer
	events EventEmitter
	log    zerolog.Logger

	decoyOnce sync.Once
	decoy     string
}

func NewAuthService(users UserStore, roles RoleStore, hasher PasswordHasher, tokens TokenIssuer, emitter EventEmitter, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		events: emitterOrNoop(emitter),
		log:    log,
	}
}

// Register stores a new USER-role account. The role row is created on first use.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email, 0)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		s.log.Warn().Str("email", input.Email).Msg("registration with existing email")
		return models.User{}, emailTaken(input.Email)
	}
	if input.PhoneNumber != nil {
		taken, err := s.users.ExistsByPhone(ctx, *input.PhoneNumber, 0)
		if err != nil {
			return models.User{}, fmt.Errorf("check phone: %w", err)
		}
		if taken {
			return models.User{}, phoneTaken(*input.PhoneNumber)
		}
	}

	role, err := s.roles.GetOrCreate(ctx, models.RoleUser)
	if err != nil {
		return models.User{}, fmt.Errorf("resolve default role: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		RoleID:       role.ID,
	})
	if err != nil {
		return models.User{}, userWriteError(err, nil, input.Email, input.PhoneNumber)
	}

	s.log.Info().Str("email", user.Email).Msg("user registered")
	s.events.Emit(ctx, events.TypeUserRegistered, events.UserPayload{UserID: user.ID, Email: user.Email})
	return user, nil
}

// Login checks credentials and issues a token. Unknown e-mail and wrong
// password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same hashing cost as a wrong password so timing does not
			// reveal which accounts exist.
			if decoy := s.decoyHash(); decoy != "" {
				_, _ = s.hasher.Verify(password, decoy)
			}
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("stored password hash unreadable")
		return LoginResult{}, ErrInvalidCredentials
	}
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	profile, err := s.profile(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.tokens.Issue(user.Email, profile.Role)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")
	return LoginResult{Token: token, User: profile}, nil
}

// decoyHash is computed once with the configured cost.
func (s *AuthService) decoyHash() string {
	s.decoyOnce.Do(func() {
		h, err := s.hasher.Hash("carrental-unknown-account")
		if err != nil {
			s.log.Error().Err(err).Msg("decoy password hash failed")
			return
		}
		s.decoy = h
	})
	return s.decoy
}

// ResolveToken validates a bearer token and loads the subject's current
// identity. A token whose subject no longer exists is invalid.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (security.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return security.Identity{}, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return security.Identity{}, security.ErrInvalidToken
		}
		return security.Identity{}, err
	}

	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		return security.Identity{}, fmt.Errorf("resolve role %d: %w", user.RoleID, err)
	}

	return security.Identity{UserID: user.ID, Email: user.Email, Role: role.Name}, nil
}

// Profile returns the current profile of the user with the given e-mail.
func (s *AuthService) Profile(ctx context.Context, email string) (UserProfile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserProfile{}, &NotFoundError{Entity: "User", ID: email, Field: "email"}
		}
		return UserProfile{}, fmt.Errorf("find user: %w", err)
	}
	return s.profile(ctx, user)
}

func (s *AuthService) profile(ctx context.Context, user models.User) (UserProfile, error) {
	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		return UserProfile{}, fmt.Errorf("resolve role %d: %w", user.RoleID, err)
	}
	return toProfile(user, role.Name), nil
}

func toProfile(user models.User, role string) UserProfile {
	return UserProfile{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        role,
	}
}

func emailTaken(email string) error {
	return conflict("User with email %s already exists", email)
}

func phoneTaken(phone string) error {
	return conflict("User with phone number %s already exists", phone)
}

// userWriteError maps a failed user insert/update, telling e-mail and phone
// unique violations apart by constraint name.
func userWriteError(err error, id any, email string, phone *string) error {
	var ce *repository.ConstraintError
	if errors.As(err, &ce) && errors.Is(err, repository.ErrDuplicate) {
		if ce.Constraint == "users_phone_number_key" && phone != nil {
			return phoneTaken(*phone)
		}
		return emailTaken(email)
	}
	return translate(err, "User", id, "")
}
