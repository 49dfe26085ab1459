package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

// AccessTokenExpiry is the lifetime of a doctor API token.
const AccessTokenExpiry = 24 * time.Hour

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidKey    = errors.New("symmetric key must be 32 bytes long")
	ErrMissingDoctor = errors.New("token carries no doctor id")
)

// TokenClaims struct represents the data in the token (DoctorID, Expiry).
type TokenClaims struct {
	DoctorID string    `json:"doctorId"`
	Expiry   time.Time `json:"expiry"`
}

// TokenIssuer mints and checks PASETO v2 local tokens for doctors.
type TokenIssuer struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer for the given 32 byte symmetric key.
func NewTokenIssuer(symmetricKey string) (*TokenIssuer, error) {
	if len(symmetricKey) != 32 {
		return nil, ErrInvalidKey
	}
	return &TokenIssuer{key: []byte(symmetricKey), expiry: AccessTokenExpiry, now: time.Now}, nil
}

// Generate encrypts a token for the given doctor.
func (t *TokenIssuer) Generate(doctorID string) (string, error) {
	if doctorID == "" {
		return "", ErrMissingDoctor
	}
	claims := TokenClaims{
		DoctorID: doctorID,
		Expiry:   t.now().Add(t.expiry),
	}
	token, err := paseto.NewV2().Encrypt(t.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Validate decrypts the token and checks its expiry.
func (t *TokenIssuer) Validate(token string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := paseto.NewV2().Decrypt(token, t.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	if t.now().After(claims.Expiry) {
		return nil, ErrTokenExpired
	}
	if claims.DoctorID == "" {
		return nil, ErrMissingDoctor
	}
	return &claims, nil
}
