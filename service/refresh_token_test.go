package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRefreshManager(t *testing.T) *RefreshTokenManager {
	t.Helper()
	manager, err := NewRefreshTokenManager("test-password", "test-salt")
	require.NoError(t, err)
	return manager
}

func TestNewRefreshTokenManager_RejectsEmptyInputs(t *testing.T) {
	_, err := NewRefreshTokenManager("", "salt")
	assert.Error(t, err)

	_, err = NewRefreshTokenManager("password", "")
	assert.Error(t, err)
}

func TestRefreshTokenManager_RoundTrip(t *testing.T) {
	manager := newTestRefreshManager(t)

	before := time.Now().UnixMilli()
	encrypted, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, encrypted)

	token, err := manager.DecryptRefreshToken(encrypted)
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.MemberID)
	assert.GreaterOrEqual(t, token.GeneratedAt, before)
	assert.LessOrEqual(t, token.GeneratedAt, time.Now().UnixMilli())
}

func TestRefreshTokenManager_TokensAreUnique(t *testing.T) {
	manager := newTestRefreshManager(t)

	first, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)
	second, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)

	// A fresh nonce makes every token distinct even for the same member.
	assert.NotEqual(t, first, second)
}

func TestRefreshTokenManager_TamperedToken(t *testing.T) {
	manager := newTestRefreshManager(t)

	encrypted, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)

	tampered := []byte(encrypted)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = manager.DecryptRefreshToken(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshTokenManager_WrongKey(t *testing.T) {
	manager := newTestRefreshManager(t)
	other, err := NewRefreshTokenManager("different-password", "different-salt")
	require.NoError(t, err)

	encrypted, err := other.GenerateRefreshToken(42)
	require.NoError(t, err)

	_, err = manager.DecryptRefreshToken(encrypted)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshTokenManager_MalformedInput(t *testing.T) {
	manager := newTestRefreshManager(t)

	cases := []string{
		"",
		"!!!not-base64!!!",
		"c2hvcnQ", // decodes to fewer bytes than a GCM nonce
	}
	for _, input := range cases {
		_, err := manager.DecryptRefreshToken(input)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken, "input %q", input)
	}
}
