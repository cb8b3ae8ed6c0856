// Package auth is the identity boundary. Token issuing, parsing, and cookie
// lifetime all delegate to go-pkgz/auth; credentials are checked against the
// user service. Nothing else in the app touches JWT internals.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-pkgz/auth/v2"
	"github.com/go-pkgz/auth/v2/avatar"
	"github.com/go-pkgz/auth/v2/provider"
	"github.com/go-pkgz/auth/v2/token"
	"github.com/golang-jwt/jwt/v5"

	"photovault/models"
	"photovault/services"
)

const (
	Issuer         = "photovault"
	TokenDuration  = time.Hour * 24
	CookieDuration = time.Hour * 24 * 7

	// CookieName is the cookie carrying the JWT for browser clients.
	CookieName = "JWT"
)

type Service struct {
	svc *auth.Service
}

// NewService wires the go-pkgz/auth service with a direct credential provider
// backed by the user database.
func NewService(users *services.UserService, secret, appURL string) *Service {
	options := auth.Opts{
		SecretReader: token.SecretFunc(func(id string) (string, error) {
			return secret, nil
		}),
		TokenDuration:  TokenDuration,
		CookieDuration: CookieDuration,
		Issuer:         Issuer,
		URL:            appURL,
		AvatarStore:    avatar.NewLocalFS("/tmp/avatars"),
	}

	svc := auth.NewService(options)

	svc.AddDirectProvider("local", provider.CredCheckerFunc(func(identity, password string) (bool, error) {
		_, err := users.Authenticate(identity, password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}))

	return &Service{svc: svc}
}

func (s *Service) TokenService() *token.Service {
	return s.svc.TokenService()
}

// IssueToken creates a signed JWT for the given user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	claims := token.Claims{
		User: &token.User{
			ID:    strconv.FormatUint(uint64(user.ID), 10),
			Name:  user.Name,
			Email: user.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.svc.TokenService().Issuer,
			Audience:  []string{Issuer},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return s.svc.TokenService().Token(claims)
}
