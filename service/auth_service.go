package service

import (
	"context"
	"database/sql"
	"errors"
	"member-api/common"
	"member-api/logger"
	"member-api/model"
	"member-api/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidEmailAndPassword keeps the message generic so callers cannot
	// tell a wrong password from an unknown account detail.
	ErrInvalidEmailAndPassword = errors.New("invalid email or password")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
)

// AuthService validates credentials or refresh tokens and issues token pairs.
type AuthService struct {
	memberRepo     repository.IMemberRepository
	tokenRepo      repository.ITokenRepository
	jwtManager     *JWTManager
	refreshManager *RefreshTokenManager
}

func NewAuthService(memberRepo repository.IMemberRepository, tokenRepo repository.ITokenRepository,
	jwtManager *JWTManager, refreshManager *RefreshTokenManager) *AuthService {
	return &AuthService{
		memberRepo:     memberRepo,
		tokenRepo:      tokenRepo,
		jwtManager:     jwtManager,
		refreshManager: refreshManager,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// EmailLogin verifies the credentials and issues a fresh access/refresh token
// pair, binding both in the token cache.
func (s *AuthService) EmailLogin(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	if !common.IsValidEmail(email) {
		return nil, ErrInvalidEmailFormat
	}

	member, err := s.memberRepo.GetMemberByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, member.Password) {
		logger.Log.WithField("member_id", member.ID).Info("Login rejected: password mismatch")
		return nil, ErrInvalidEmailAndPassword
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(member.ID, member.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refreshManager.GenerateRefreshToken(member.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.SaveAccessToken(ctx, accessToken, member.ID); err != nil {
		return nil, err
	}
	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken, member.ID); err != nil {
		return nil, err
	}

	logger.Log.WithField("member_id", member.ID).Info("Member logged in")
	return &model.LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken mints a new access token for a valid refresh token. The
// refresh token is echoed back unchanged; it is not rotated.
func (s *AuthService) RefreshToken(ctx context.Context, encryptedRefreshToken string) (*model.LoginResponse, error) {
	refreshToken, err := s.refreshManager.DecryptRefreshToken(encryptedRefreshToken)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetMemberByID(refreshToken.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	found, err := s.tokenRepo.CheckRefreshToken(ctx, member.ID, encryptedRefreshToken)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Log.WithField("member_id", member.ID).Info("Refresh rejected: token not present in cache")
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(member.ID, member.Role)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.SaveAccessToken(ctx, accessToken, member.ID); err != nil {
		return nil, err
	}

	logger.Log.WithField("member_id", member.ID).Info("Access token refreshed")
	return &model.LoginResponse{AccessToken: accessToken, RefreshToken: encryptedRefreshToken}, nil
}
