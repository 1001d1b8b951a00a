// file: model/response.go

package model

// LoginResponse carries the token pair returned by login and refresh.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// PhoneOTPResponse echoes the verified phone number together with the
// generated one-time code.
type PhoneOTPResponse struct {
	MobilePhone string `json:"mobilePhone"`
	OTPCode     string `json:"otpCode"`
}
