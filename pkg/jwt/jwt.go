package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserMetadata datos de perfil que el proveedor de identidad adjunta al token.
type UserMetadata struct {
	Name string `json:"name,omitempty"`
}

// Claims incluye los claims estándar JWT más email y metadatos del proveedor de identidad.
// El Subject es el identificador del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// Identity identidad autenticada extraída de un token válido.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Generate genera un token JWT firmado (HS256) para la identidad dada.
// En producción los tokens los emite el proveedor de identidad; se usa en tests y desarrollo local.
func Generate(secret, issuer string, id Identity, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:        id.Email,
		UserMetadata: UserMetadata{Name: id.Name},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración y (si se indica) el emisor, y devuelve la identidad.
func Parse(secret, issuer, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("jwt: claim sub vacío")
	}
	return Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.UserMetadata.Name,
	}, nil
}
