package utils

import (
	"context"
	"errors"
	"time"

	"koobings/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Actor kinds carried in the token's "kind" claim.
const (
	TokenKindBusiness = "business"
	TokenKindStaff    = "staff"
)

const revokedKeyPrefix = "revoked:"

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// TokenClaims is the decoded view of an access token.
type TokenClaims struct {
	Subject    string // staff or business ID
	BusinessID string
	Kind       string
	Role       string
	JTI        string
	ExpiresAt  time.Time
}

// GenerateToken creates a signed JWT for the given actor. Every token
// carries a unique jti so it can be revoked server-side.
func GenerateToken(subject, businessID, kind, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"bid":  businessID,
		"kind": kind,
		"role": role,
		"jti":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	out := &TokenClaims{}
	if out.Subject, ok = claims["sub"].(string); !ok || out.Subject == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	out.BusinessID, _ = claims["bid"].(string)
	out.Kind, _ = claims["kind"].(string)
	out.Role, _ = claims["role"].(string)
	if out.JTI, ok = claims["jti"].(string); !ok || out.JTI == "" {
		return nil, errors.New("token does not contain a valid 'jti' claim")
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// RevokeToken puts the token's jti on the server-side revocation list with a
// TTL equal to the token's remaining life, so the entry expires together
// with the token itself.
func RevokeToken(ctx context.Context, claims *TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return GetAuthCacheClient().Set(ctx, revokedKeyPrefix+claims.JTI, "1", ttl).Err()
}

// IsTokenRevoked checks the revocation list; it is consulted on every
// authenticated request.
func IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := GetAuthCacheClient().Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
