package jwtadapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "scholarstream/contexts/identity-access/identity-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

// Config selects the verification key. PublicKeyPEM (RS256) wins over Secret (HS256).
type Config struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
	Audience     string
	Leeway       time.Duration
}

// Verifier validates identity-provider JWTs locally.
type Verifier struct {
	parser  *jwt.Parser
	keyFunc jwt.Keyfunc
}

type claims struct {
	Email  string `json:"email"`
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

func NewVerifier(cfg Config) (*Verifier, error) {
	options := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if cfg.Leeway > 0 {
		options = append(options, jwt.WithLeeway(cfg.Leeway))
	}
	if issuer := strings.TrimSpace(cfg.Issuer); issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}
	if audience := strings.TrimSpace(cfg.Audience); audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}

	var keyFunc jwt.Keyfunc
	switch {
	case strings.TrimSpace(cfg.PublicKeyPEM) != "":
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		options = append(options, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		keyFunc = func(*jwt.Token) (any, error) { return publicKey, nil }
	case cfg.Secret != "":
		secret := []byte(cfg.Secret)
		options = append(options, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		keyFunc = func(*jwt.Token) (any, error) { return secret, nil }
	default:
		return nil, domainerrors.ErrVerifierMisconfigured
	}

	return &Verifier{
		parser:  jwt.NewParser(options...),
		keyFunc: keyFunc,
	}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (identity.Identity, error) {
	var parsed claims
	result, err := v.parser.ParseWithClaims(token, &parsed, v.keyFunc)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, err)
	}
	if !result.Valid {
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, domainerrors.ErrInvalidCredential)
	}

	userID := strings.TrimSpace(parsed.Subject)
	if userID == "" {
		userID = strings.TrimSpace(parsed.UserID)
	}
	caller := identity.Identity{
		UserID: userID,
		Email:  identity.NormalizeEmail(parsed.Email),
	}
	if caller.IsZero() {
		return identity.Identity{}, fmt.Errorf("%w: %w", domainerrors.ErrUnauthenticated, domainerrors.ErrInvalidCredential)
	}
	return caller, nil
}
