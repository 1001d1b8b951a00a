package handler

import (
	"encoding/json"
	"errors"
	"member-api/common"
	"member-api/model"
	"member-api/service"
	"net/http"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// EmailLogin godoc
// @Summary      Login by email and password
// @Description  Verifies the credentials and returns an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login body model.EmailLoginRequest true "Email and password"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Invalid email format or credentials"
// @Failure      404  {object}  common.AppError "Member not found"
// @Router       /api/auth/email-login [post]
func (h *AuthHandler) EmailLogin(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.EmailLoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	response, err := h.authService.EmailLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case errors.Is(err, service.ErrInvalidEmailFormat), errors.Is(err, service.ErrInvalidEmailAndPassword):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process login", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	return nil
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchanges a valid refresh token for a new access token. The refresh token itself is returned unchanged.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.TokenRequest true "Refresh token"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Invalid refresh token"
// @Failure      404  {object}  common.AppError "Member not found"
// @Router       /api/auth/token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TokenRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	response, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case errors.Is(err, service.ErrInvalidRefreshToken):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not refresh token", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	return nil
}
