// file: repository/token_repository.go

package repository

import (
	"context"
	"fmt"
	"member-api/logger"
	"strconv"
	"time"
)

const (
	accessTokenKeyFormat  = "member_id:%d:access_token:%s"
	refreshTokenKeyFormat = "member_id:%d:refresh_token:%s"
)

func AccessTokenKey(memberID int64, accessToken string) string {
	return fmt.Sprintf(accessTokenKeyFormat, memberID, accessToken)
}

func RefreshTokenKey(memberID int64, refreshToken string) string {
	return fmt.Sprintf(refreshTokenKeyFormat, memberID, refreshToken)
}

// ITokenRepository binds issued tokens to member identity with a TTL so the
// auth filter can check token liveness without touching the member store.
type ITokenRepository interface {
	SaveAccessToken(ctx context.Context, accessToken string, memberID int64) error
	// CheckAccessToken reports whether the cache holds the token for this
	// member. The stored value must parse back to the same member id.
	CheckAccessToken(ctx context.Context, memberID int64, accessToken string) (bool, error)
	SaveRefreshToken(ctx context.Context, refreshToken string, memberID int64) error
	// CheckRefreshToken is a presence test only; the stored value is not
	// re-validated against the member id on this path.
	CheckRefreshToken(ctx context.Context, memberID int64, refreshToken string) (bool, error)
}

// TokenRepository implements ITokenRepository on the session store.
type TokenRepository struct {
	store      ISessionStore
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenRepository(store ISessionStore, accessTTL, refreshTTL time.Duration) *TokenRepository {
	return &TokenRepository{
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (r *TokenRepository) SaveAccessToken(ctx context.Context, accessToken string, memberID int64) error {
	key := AccessTokenKey(memberID, accessToken)
	if err := r.store.Set(ctx, key, strconv.FormatInt(memberID, 10), r.accessTTL); err != nil {
		logger.Log.WithError(err).WithField("member_id", memberID).Error("Failed to save access token")
		return err
	}
	return nil
}

func (r *TokenRepository) CheckAccessToken(ctx context.Context, memberID int64, accessToken string) (bool, error) {
	value, found, err := r.store.Get(ctx, AccessTokenKey(memberID, accessToken))
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	storedID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.Log.WithField("member_id", memberID).Warn("Access token cache holds a non-numeric value")
		return false, nil
	}
	return storedID == memberID, nil
}

func (r *TokenRepository) SaveRefreshToken(ctx context.Context, refreshToken string, memberID int64) error {
	key := RefreshTokenKey(memberID, refreshToken)
	if err := r.store.Set(ctx, key, strconv.FormatInt(memberID, 10), r.refreshTTL); err != nil {
		logger.Log.WithError(err).WithField("member_id", memberID).Error("Failed to save refresh token")
		return err
	}
	return nil
}

func (r *TokenRepository) CheckRefreshToken(ctx context.Context, memberID int64, refreshToken string) (bool, error) {
	_, found, err := r.store.Get(ctx, RefreshTokenKey(memberID, refreshToken))
	if err != nil {
		return false, err
	}
	return found, nil
}
