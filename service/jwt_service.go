// file: service/jwt_service.go

package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"member-api/logger"
	"member-api/model"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerTokenPrefix = "Bearer "

var (
	// ErrTokenExpired is returned for a well-formed token whose expiry has
	// elapsed. It maps to a distinct user-facing response.
	ErrTokenExpired = errors.New("access token has expired")
	// ErrTokenDecoding is returned when the signature or token encoding is
	// invalid.
	ErrTokenDecoding = errors.New("access token could not be decoded")
	// ErrInvalidToken covers structurally wrong tokens, including a
	// non-numeric subject and a missing bearer prefix.
	ErrInvalidToken = errors.New("invalid access token")
)

// JWTManager signs and verifies compact HS256 access tokens.
type JWTManager struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWTManager decodes the base64 signing secret. The TTL applies to every
// issued access token.
func NewJWTManager(base64Secret string, tokenTTL time.Duration) (*JWTManager, error) {
	secretKey, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode jwt secret: %w", err)
	}
	if len(secretKey) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &JWTManager{secretKey: secretKey, tokenTTL: tokenTTL}, nil
}

// GenerateAccessToken issues a signed token with the member id as subject and
// the role as a custom claim.
func (m *JWTManager) GenerateAccessToken(memberID int64, role model.Role) (string, error) {
	now := time.Now()

	claims := &model.AppClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(memberID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		logger.Log.WithError(err).WithField("member_id", memberID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// ParseBearerToken strips the "Bearer " prefix from an Authorization header
// value.
func (m *JWTManager) ParseBearerToken(headerValue string) (string, error) {
	if strings.TrimSpace(headerValue) == "" || !strings.HasPrefix(headerValue, bearerTokenPrefix) {
		return "", ErrInvalidToken
	}
	return headerValue[len(bearerTokenPrefix):], nil
}

// ExtractMemberID verifies the token signature and expiry and returns the
// member id from the subject claim.
func (m *JWTManager) ExtractMemberID(accessToken string) (int64, error) {
	claims := &model.AppClaims{}

	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil:
		// fall through to subject parsing
	case errors.Is(err, jwt.ErrTokenExpired):
		logger.Log.Info("Jwt is expired")
		return 0, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		logger.Log.WithError(err).Warn("Jwt signature verification failed")
		return 0, ErrTokenDecoding
	default:
		logger.Log.WithError(err).Warn("Jwt parsing failed")
		return 0, ErrInvalidToken
	}

	memberID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		logger.Log.WithError(err).Warn("Jwt subject is not a member id")
		return 0, ErrInvalidToken
	}
	return memberID, nil
}
