package admin

import (
	"errors"
	"time"

	"cadenza/globals"
	"cadenza/middleware"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

// Principal identifies an authenticated back-office operator.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authenticator is the delegated authentication contract for the admin
// panel. Implementations exchange credentials for a token and tokens for
// principals; handlers never see passwords or signing keys.
type Authenticator interface {
	Authenticate(username, password string) (token string, err error)
	Validate(token string) (Principal, error)
}

// jwtAuthenticator checks a single operator credential from the environment
// and issues short-lived signed tokens compatible with the shared bearer
// middleware.
type jwtAuthenticator struct {
	username     string
	passwordHash string
	ttl          time.Duration
}

// NewEnvAuthenticator builds the default authenticator from ADMIN_USERNAME
// and ADMIN_PASSWORD_HASH (a bcrypt hash, never the plain password).
func NewEnvAuthenticator() Authenticator {
	return &jwtAuthenticator{
		username:     globals.Getenv("ADMIN_USERNAME", "admin"),
		passwordHash: globals.Getenv("ADMIN_PASSWORD_HASH", ""),
		ttl:          time.Hour,
	}
}

func (a *jwtAuthenticator) Authenticate(username, password string) (string, error) {
	if username != a.username || a.passwordHash == "" {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	claims := &middleware.Claims{
		Username: username,
		UserID:   "admin:" + username,
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}

func (a *jwtAuthenticator) Validate(token string) (Principal, error) {
	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	for _, role := range claims.Role {
		if role == "admin" {
			return Principal{Username: claims.Username, Role: "admin"}, nil
		}
	}
	return Principal{}, ErrInvalidToken
}

// Auth is the process-wide authenticator. Swapped out in tests.
var Auth Authenticator = NewEnvAuthenticator()
