package handler

import (
	"context"
	"errors"
	"member-api/common"
	"member-api/model"
	"member-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	MemberIDKey   contextKey = "memberID"
	MemberRoleKey contextKey = "memberRole"
	MemberKey     contextKey = "member"
)

// AuthMiddleware is the per-request authentication filter. Requests without
// a bearer token pass through anonymously; route-level guards decide whether
// anonymous access is allowed.
type AuthMiddleware struct {
	jwtManager      *service.JWTManager
	securityService *service.SecurityService
}

func NewAuthMiddleware(jwtManager *service.JWTManager, securityService *service.SecurityService) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, securityService: securityService}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearerToken := r.Header.Get("Authorization")
		if strings.TrimSpace(bearerToken) == "" || !strings.HasPrefix(bearerToken, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		accessToken, err := m.jwtManager.ParseBearerToken(bearerToken)
		if err != nil {
			common.NewAppError(http.StatusUnauthorized, "Invalid access token", err).Send(w)
			return
		}

		memberID, err := m.jwtManager.ExtractMemberID(accessToken)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				common.NewAppError(http.StatusUnauthorized, "Access token has expired", err).Send(w)
				return
			}
			common.NewAppError(http.StatusUnauthorized, "Invalid access token", err).Send(w)
			return
		}

		if err := m.securityService.ValidateAccessToken(r.Context(), memberID, accessToken); err != nil {
			common.NewAppError(http.StatusUnauthorized, "Invalid access token", err).Send(w)
			return
		}

		// A member lookup failure inside the filter also renders as an
		// invalid-token response, not a 404.
		member, err := m.securityService.FindMemberByID(memberID)
		if err != nil {
			common.NewAppError(http.StatusUnauthorized, "Invalid access token", err).Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), MemberIDKey, member.ID)
		ctx = context.WithValue(ctx, MemberRoleKey, member.Role)
		ctx = context.WithValue(ctx, MemberKey, member)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that reached a protected route without an
// authenticated member in the context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(MemberIDKey).(int64); !ok {
			common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil).Send(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware gates a route on the ADMIN role.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(MemberRoleKey).(model.Role)
		if !ok || role != model.RoleAdmin {
			common.NewAppError(http.StatusForbidden, "Access denied. Admin privileges required.", nil).Send(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
