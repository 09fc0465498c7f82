package me

import (
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/get_user_by_session_token"
	"inventory/internal/http/handlers/auth"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func serve(s *services.FakeService[service.Input, service.Result]) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
	r.Header.Set("Authorization", "Bearer token-1")
	rw := httptest.NewRecorder()
	auth.RequireAuthToken(New(s)).ServeHTTP(rw, r)
	return rw
}

func TestMe(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result]()
	createdAt := time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Result = service.Result{User: user.User{
		ID:        3,
		Name:      "Jane",
		Email:     "jane@test.test",
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
	}}

	rw := serve(s)

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{"user": {
		"id": 3,
		"name": "Jane",
		"email": "jane@test.test",
		"created_at": "2022-01-02 03:04:05",
		"updated_at": "2022-01-02 04:04:05"
	}}`, rw.Body.String())
	require.Equal(t, []service.Input{{Token: user.SessionToken("token-1")}}, s.Inputs)
}

func TestMeWithUnknownSession(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result]()
	s.ReturnError = user.ErrUserDoesNotExist

	rw := serve(s)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
	require.JSONEq(t, `{"message": "Unauthenticated"}`, rw.Body.String())
}
