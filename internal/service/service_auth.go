package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/mikas-m/wortschatz/internal/config"
	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/internal/store"
	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

// Credential length bounds applied to both username and password.
const (
	credentialMinLen = 4
	credentialMaxLen = 20
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor used when hashing passwords at
	// registration.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Both credentials are trimmed and must be 4 to 20 characters long. The
// password is hashed with bcrypt before persistence; the plaintext never
// leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if either credential fails validation.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(&user); err != nil {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(passwordHash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates the credentials, looks up the account by username, and
// compares the supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if either credential fails validation.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(&user); err != nil {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// validateCredentials trims both credentials in place and checks the length
// bounds.
func validateCredentials(user *models.User) error {
	user.Username = strings.TrimSpace(user.Username)
	user.Password = strings.TrimSpace(user.Password)

	if !credentialLengthOK(user.Username) {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidDataProvided, credentialMinLen, credentialMaxLen)
	}
	if !credentialLengthOK(user.Password) {
		return fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidDataProvided, credentialMinLen, credentialMaxLen)
	}

	return nil
}

func credentialLengthOK(s string) bool {
	length := utf8.RuneCountInString(s)
	return length >= credentialMinLen && length <= credentialMaxLen
}
