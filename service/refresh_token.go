// file: service/refresh_token.go

package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"member-api/logger"
	"time"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidRefreshToken collapses every decode failure mode (corrupted
// encoding, wrong key, tampered ciphertext, malformed payload) into a single
// error so callers cannot distinguish them.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// RefreshToken is the payload carried inside the encrypted opaque string.
type RefreshToken struct {
	MemberID    int64 `json:"member_id"`
	GeneratedAt int64 `json:"generated_at"`
}

// RefreshTokenManager encrypts and decrypts refresh tokens with AES-256-GCM.
// The key is derived from a configured password and salt; the nonce is
// prepended to the ciphertext and the whole blob is URL-safe base64.
type RefreshTokenManager struct {
	aead cipher.AEAD
}

func NewRefreshTokenManager(password, salt string) (*RefreshTokenManager, error) {
	if password == "" || salt == "" {
		return nil, errors.New("refresh token password and salt must not be empty")
	}

	key := argon2.IDKey([]byte(password), []byte(salt), 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create aead: %w", err)
	}

	return &RefreshTokenManager{aead: aead}, nil
}

// GenerateRefreshToken encodes {memberID, now} into an opaque encrypted
// string. Encoding never touches the session store.
func (m *RefreshTokenManager) GenerateRefreshToken(memberID int64) (string, error) {
	plaintext, err := json.Marshal(RefreshToken{
		MemberID:    memberID,
		GeneratedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate refresh token")
		return "", fmt.Errorf("failed to serialize refresh token: %w", err)
	}

	nonce := make([]byte, m.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := m.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// DecryptRefreshToken decodes an opaque refresh token back into its payload.
// It performs no staleness check; token lifetime lives in the cache.
func (m *RefreshTokenManager) DecryptRefreshToken(encryptedToken string) (*RefreshToken, error) {
	blob, err := base64.RawURLEncoding.DecodeString(encryptedToken)
	if err != nil {
		logger.Log.Info("Failed to decode refresh token encoding")
		return nil, ErrInvalidRefreshToken
	}

	nonceSize := m.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrInvalidRefreshToken
	}

	plaintext, err := m.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		logger.Log.Info("Failed to decrypt refresh token")
		return nil, ErrInvalidRefreshToken
	}

	var token RefreshToken
	if err := json.Unmarshal(plaintext, &token); err != nil {
		logger.Log.Info("Failed to deserialize refresh token payload")
		return nil, ErrInvalidRefreshToken
	}
	if token.MemberID <= 0 {
		return nil, ErrInvalidRefreshToken
	}
	return &token, nil
}
