package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration and credential verification using a
// UserRepository for persistence, bcrypt for password hashing and a
// TokenIssuer for access tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// issuer signs the access token returned by Login.
	issuer TokenIssuer

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, issuer TokenIssuer, bcryptCost int, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		issuer:         issuer,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Signup creates a new account with a bcrypt hash of the password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the role is unknown.
//   - ErrPasswordTooLong if the password exceeds bcrypt's 72-byte limit.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordTooLong, err)
		}
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role.String(),
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("role", user.Role).Msg("user registered")
	return user, nil
}

// Login checks the email and password and returns a signed access token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", req.Email).Msg("login for unknown email")
			return "", ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	role, err := auth.ParseRole(user.Role)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("stored user has unknown role")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := a.issuer.Issue(user.UserID, role)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error issuing token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
