package router

import (
	"member-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter builds the HTTP routing table. The auth middleware runs on every
// request and lets anonymous requests through; RequireAuth enforces
// authentication on the protected member and file routes.
func NewRouter(authMiddleware *handler.AuthMiddleware,
	authHandler *handler.AuthHandler,
	verificationHandler *handler.VerificationHandler,
	memberHandler *handler.MemberHandler,
	fileHandler *handler.FileHandler,
	healthHandler *handler.HealthHandler) http.Handler {

	mux := http.NewServeMux()

	mux.Handle("POST /api/auth/email-login", handler.ErrorHandlingMiddleware(authHandler.EmailLogin))
	mux.Handle("POST /api/auth/token", handler.ErrorHandlingMiddleware(authHandler.RefreshToken))

	mux.Handle("GET /api/verification/phone/{mobilePhone}", handler.ErrorHandlingMiddleware(verificationHandler.GetPhoneOTP))

	mux.Handle("GET /api/members/me", handler.RequireAuth(handler.ErrorHandlingMiddleware(memberHandler.GetCurrentMember)))

	mux.Handle("POST /api/files", handler.RequireAuth(handler.ErrorHandlingMiddleware(fileHandler.UploadFile)))
	mux.Handle("GET /api/files", handler.RequireAuth(handler.ErrorHandlingMiddleware(fileHandler.ListFiles)))
	mux.Handle("GET /api/files/{id}", handler.RequireAuth(handler.ErrorHandlingMiddleware(fileHandler.DownloadFile)))

	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return authMiddleware.Handle(mux)
}
