package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/periodicapp/periodic/internal/config"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/internal/validators"
	"github.com/periodicapp/periodic/models"
)

// minPasswordLength is the shortest accepted password. Shorter values are
// rejected with the "password.short" violation.
const minPasswordLength = 8

// dummyHash is a well-formed bcrypt hash compared against when the username
// lookup finds no account, so the unknown-username and wrong-password
// branches both pay for one bcrypt comparison. The comparison result is
// discarded.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService. It owns the
// registration rule table and bcrypt password handling; persistence is
// delegated to a UserRepository.
type authService struct {
	userRepository store.UserRepository

	// bcryptCost is the bcrypt cost factor applied when hashing passwords
	// at registration time.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// registrationRules returns the ordered rule table for the registration
// payload. Username checks run before password checks; within the username
// the uniqueness lookup runs last.
func (a *authService) registrationRules() []validators.Rule {
	return []validators.Rule{
		{
			Field:    "username",
			Required: true,
			Kind:     validators.String,
			Unique: func(ctx context.Context, value any) (bool, error) {
				username, _ := value.(string)
				return a.userRepository.UsernameExists(ctx, username)
			},
		},
		{
			Field:    "password",
			Required: true,
			Kind:     validators.String,
			MinLen:   minPasswordLength,
		},
	}
}

// Register creates a new user account from the raw registration payload.
//
// The payload is run through the validation pipeline first; a rejected
// payload is returned as a *validators.Violation. The password is then
// bcrypt-hashed and the account persisted. If the store reports a unique
// violation despite the pipeline pre-check (two registrations racing), the
// error is mapped to the same "username.duplicate" violation the pre-check
// would have produced.
func (a *authService) Register(ctx context.Context, payload map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	fields, err := validators.Run(ctx, payload, a.registrationRules())
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fields.String("password")), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error: hashing password failed")
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	user := models.User{
		Username:     fields.String("username"),
		PasswordHash: string(hash),
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, validators.Duplicate("username")
		}
		log.Err(err).Str("func", "*authService.Register").Msg("error: user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return registered, nil
}

// VerifyCredentials authenticates a username/password pair.
//
// An unknown username still performs one bcrypt comparison against
// dummyHash before failing, so the caller-observable cost does not reveal
// whether the account exists. Both failure modes return
// ErrInvalidCredentials; storage failures other than not-found are
// returned wrapped.
func (a *authService) VerifyCredentials(ctx context.Context, username, password string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return models.SessionUser{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.VerifyCredentials").Msg("error: user lookup failed")
		return models.SessionUser{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("password mismatch")
		return models.SessionUser{}, ErrInvalidCredentials
	}

	return models.SessionUser{ID: user.ID, Username: user.Username}, nil
}
