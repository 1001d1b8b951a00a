package handler

import (
	"encoding/json"
	"member-api/common"
	"member-api/model"
	"net/http"
)

type MemberHandler struct{}

func NewMemberHandler() *MemberHandler {
	return &MemberHandler{}
}

// GetCurrentMember godoc
// @Summary      Get the authenticated member
// @Description  Returns the member resolved by the bearer token.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Member
// @Failure      401  {object}  common.AppError "Unauthorized: invalid or missing token"
// @Router       /api/members/me [get]
func (h *MemberHandler) GetCurrentMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	member, ok := r.Context().Value(MemberKey).(*model.Member)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid member in token", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(member)
	return nil
}
