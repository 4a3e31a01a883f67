package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	ID   uint
	Role string
}

var ErrInvalidToken = errors.New("invalid token")

// Verifier turns an opaque bearer credential into an Identity.
type Verifier interface {
	Verify(token string) (Identity, error)
}

// JWTVerifier signs and verifies HMAC tokens carrying id and role claims.
type JWTVerifier struct {
	secret []byte
	expiry time.Duration
}

func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret, expiry: time.Hour}
}

func (v *JWTVerifier) Issue(id uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(v.expiry).Unix(),
	})
	return token.SignedString(v.secret)
}

func (v *JWTVerifier) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return Identity{ID: uint(id), Role: role}, nil
}
