package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of session tokens.
// Validity is purely a function of signature and expiry; nothing is stored
// server-side.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Claims carried by the session token. Username and Age are only present on
// tokens issued at registration; login tokens carry email and user id alone.
type Claims struct {
	Email    string `json:"email"`
	UserID   string `json:"userid"`
	Username string `json:"username,omitempty"`
	Age      int    `json:"age,omitempty"`
	jwt.RegisteredClaims
}

func (m *JWTManager) Generate(claims Claims) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
