package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/employee-management-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken возвращается при любом дефекте предъявленного токена
var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка выпускаемого токена.
// Subject содержит id сотрудника, Email - его email, ID - уникальный jti.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer выпускает и проверяет подписанные HS256 bearer-токены
type Issuer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewIssuer создаёт издателя токенов из конфигурации
func NewIssuer(cfg config.JWTConfig) *Issuer {
	return &Issuer{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      time.Duration(cfg.TTLMinutes) * time.Minute,
	}
}

// Issue выпускает токен для сотрудника со сроком действия из конфигурации
func (i *Issuer) Issue(employeeID int64, email string) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(employeeID, 10),
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// Verify проверяет подпись и срок действия токена и возвращает его claims
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
