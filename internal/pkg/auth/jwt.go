package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrEmptySigningKey = errors.New("jwt signing key is empty")

type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(user *entity.User) (string, error)
	Parse(token string) (*Claims, error)
}

type jwtIssuer struct {
	key        []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

func NewTokenIssuer(key, issuer string, expiration time.Duration) (TokenIssuer, error) {
	if key == "" {
		return nil, ErrEmptySigningKey
	}
	return &jwtIssuer{
		key:        []byte(key),
		issuer:     issuer,
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// Issue signs an HS256 token whose subject is the username.
func (i *jwtIssuer) Issue(user *entity.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (i *jwtIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}
	return claims, nil
}
