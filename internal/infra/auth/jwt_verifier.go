// Package auth verifies operator access tokens.
package auth

import (
	"log/slog"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// operatorClaims is the JWT payload issued to console operators and trackers.
type operatorClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 access tokens.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier returns nil when no secret is configured, which leaves the API unauthenticated.
func NewTokenVerifier(cfg *config.Config, logger *slog.Logger) service.TokenVerifier {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		logger.Warn("Auth secret not configured, API requests are not authenticated")

		return nil
	}

	return newJWTVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
}

func newJWTVerifier(secret, issuer string) *jwtVerifier {
	return &jwtVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses the token and returns its subject and roles.
func (v *jwtVerifier) Verify(tokenString string) (*service.OperatorClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &operatorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return &service.OperatorClaims{Subject: subject, Roles: claims.Roles}, nil
}

// IssueToken signs an access token. The identity service owns issuance in production;
// this is used by tests and local tooling.
func IssueToken(secret, issuer, subject string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := operatorClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
