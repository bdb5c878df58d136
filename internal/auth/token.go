package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Тип токена фиксирован в claims, чтобы токен подтверждения email нельзя
// было использовать ни для чего другого.
const tokenTypeVerify = "verify"

type verificationClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager инициализирует менеджер токенов подтверждения email.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// NewVerificationToken выпускает токен подтверждения для пользователя.
func (m *TokenManager) NewVerificationToken(userID uuid.UUID) (string, error) {
	now := time.Now()

	claims := verificationClaims{
		TokenType: tokenTypeVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseVerificationToken валидирует токен и возвращает идентификатор
// пользователя из subject.
func (m *TokenManager) ParseVerificationToken(tokenString string) (uuid.UUID, error) {
	claims := &verificationClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(m.issuer))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if !token.Valid {
		return uuid.Nil, errors.New("token is invalid")
	}

	if claims.TokenType != tokenTypeVerify {
		return uuid.Nil, errors.New("token type mismatch")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("invalid token subject")
	}

	return userID, nil
}
