package handler

import (
	"encoding/json"
	"member-api/model"
	"member-api/repository"
	"member-api/service"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newVerificationMux routes through a real pattern so r.PathValue works.
func newVerificationMux(t *testing.T) (*http.ServeMux, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := repository.NewRedisSessionStore(client)
	verificationService := service.NewVerificationService(store, 300*time.Second, 60*time.Second)
	handler := NewVerificationHandler(verificationService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/verification/phone/{mobilePhone}", ErrorHandlingMiddleware(handler.GetPhoneOTP))
	return mux, mr
}

func TestVerificationHandler_GetPhoneOTP(t *testing.T) {
	mux, mr := newVerificationMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verification/phone/+14155550100", nil)
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response model.PhoneOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "+14155550100", response.MobilePhone)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), response.OTPCode)

	// The code the caller received is the one the store will verify against.
	stored, err := mr.Get(service.PhoneVerificationKey("+14155550100"))
	require.NoError(t, err)
	assert.Equal(t, response.OTPCode, stored)
}

func TestVerificationHandler_InvalidPhoneFormat(t *testing.T) {
	mux, _ := newVerificationMux(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verification/phone/not-a-phone", nil)
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid mobile phone format")
}

func TestVerificationHandler_RetryTooSoon(t *testing.T) {
	mux, _ := newVerificationMux(t)

	first := httptest.NewRecorder()
	mux.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/verification/phone/0912345678", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	mux.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/verification/phone/0912345678", nil))

	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "retry in 60 seconds")
}
