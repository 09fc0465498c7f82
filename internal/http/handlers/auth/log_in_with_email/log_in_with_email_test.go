package loginwithemail

import (
	"errors"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	loginwithemail "inventory/internal/core/services/log_in_with_email"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogInWithEmailHandler(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		serviceError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "ok",
			body:           `{"email": "test@test.test", "password": "secret"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token": "session-token"}`,
		},
		{
			name:           "invalid credentials",
			body:           `{"email": "test@test.test", "password": "secret"}`,
			serviceError:   user.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid credentials"}`,
		},
		{
			name:           "rate limited",
			body:           `{"email": "test@test.test", "password": "secret"}`,
			serviceError:   ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"message": "Too many requests"}`,
		},
		{
			name:           "unexpected error",
			body:           `{"email": "test@test.test", "password": "secret"}`,
			serviceError:   errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message": "Internal error"}`,
		},
		{
			name:           "missing password",
			body:           `{"email": "test@test.test"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message": "The given data was invalid", "errors": {"password": "cannot be blank"}}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			service := services.NewFakeService[loginwithemail.Input, loginwithemail.Result]()
			service.Result = loginwithemail.Result{Token: "session-token"}
			service.ReturnError = testcase.serviceError

			rw := httptest.NewRecorder()
			New(service).ServeHTTP(
				rw,
				httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(testcase.body)),
			)

			require.Equal(t, testcase.expectedStatus, rw.Code)
			require.JSONEq(t, testcase.expectedBody, rw.Body.String())
		})
	}
}
