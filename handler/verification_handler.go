package handler

import (
	"encoding/json"
	"errors"
	"member-api/common"
	"member-api/model"
	"member-api/service"
	"net/http"
)

type VerificationHandler struct {
	verificationService *service.VerificationService
}

func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// GetPhoneOTP godoc
// @Summary      Request a phone verification code
// @Description  Issues a 6-digit one-time code for the given phone number. A new code is only issued once the previous one has aged past the minimum retry interval.
// @Tags         verification
// @Produce      json
// @Param        mobilePhone path string true "Mobile phone number"
// @Success      200  {object}  model.PhoneOTPResponse
// @Failure      400  {object}  common.AppError "Invalid phone format or retry too soon"
// @Router       /api/verification/phone/{mobilePhone} [get]
func (h *VerificationHandler) GetPhoneOTP(w http.ResponseWriter, r *http.Request) *common.AppError {
	mobilePhone := r.PathValue("mobilePhone")

	code, err := h.verificationService.GeneratePhoneVerificationCode(r.Context(), mobilePhone)
	if err != nil {
		var formatErr *service.InvalidMobilePhoneFormatError
		var retryErr *service.TooManyPhoneRetryAttemptError
		switch {
		case errors.As(err, &formatErr):
			return common.NewAppError(http.StatusBadRequest, formatErr.Error(), err)
		case errors.As(err, &retryErr):
			return common.NewAppError(http.StatusBadRequest, retryErr.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not generate verification code", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.PhoneOTPResponse{MobilePhone: mobilePhone, OTPCode: code})
	return nil
}
