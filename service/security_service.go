// file: service/security_service.go

package service

import (
	"context"
	"database/sql"
	"errors"
	"member-api/model"
	"member-api/repository"
)

// SecurityService backs the authentication filter: it resolves member
// identity and checks access-token liveness against the cache.
type SecurityService struct {
	memberRepo repository.IMemberRepository
	tokenRepo  repository.ITokenRepository
}

func NewSecurityService(memberRepo repository.IMemberRepository, tokenRepo repository.ITokenRepository) *SecurityService {
	return &SecurityService{memberRepo: memberRepo, tokenRepo: tokenRepo}
}

func (s *SecurityService) FindMemberByID(memberID int64) (*model.Member, error) {
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// ValidateAccessToken succeeds only when the cache entry for this token
// still exists and its stored value matches the claimed member id.
func (s *SecurityService) ValidateAccessToken(ctx context.Context, memberID int64, accessToken string) error {
	valid, err := s.tokenRepo.CheckAccessToken(ctx, memberID, accessToken)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidToken
	}
	return nil
}
