package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

const issuer = "gravegrounds"

// Claims inclui as claims registradas e a identidade do usuário
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JWTProvider implementa ports.TokenProvider com HS256
type JWTProvider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTProvider cria um JWTProvider
func NewJWTProvider(secret string, expiry time.Duration) *JWTProvider {
	return &JWTProvider{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

var _ ports.TokenProvider = (*JWTProvider)(nil)

func (p *JWTProvider) Issue(user *entities.User) (string, error) {
	now := p.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
		},
		Username: user.Username,
		Role:     string(user.Role),
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate confere assinatura, algoritmo, emissor e expiração.
// Qualquer falha é reportada como ErrUnauthorized.
func (p *JWTProvider) Validate(tokenString string) (*ports.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return &ports.TokenClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     entities.Role(claims.Role),
	}, nil
}
