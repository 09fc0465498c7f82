package logout

import (
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	logout "inventory/internal/core/services/log_out"
	"inventory/internal/http/handlers/auth"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serve(service *services.FakeService[logout.Input, logout.Result], header string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/v1/logout", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	rw := httptest.NewRecorder()
	auth.RequireAuthToken(New(service)).ServeHTTP(rw, r)
	return rw
}

func TestLogOut(t *testing.T) {
	service := services.NewFakeService[logout.Input, logout.Result]()

	rw := serve(service, "Bearer token-1")

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{"message": "Successfully logged out"}`, rw.Body.String())
	require.Equal(t, []logout.Input{{Token: user.SessionToken("token-1")}}, service.Inputs)
}

func TestLogOutWithoutToken(t *testing.T) {
	service := services.NewFakeService[logout.Input, logout.Result]()

	rw := serve(service, "")

	require.Equal(t, http.StatusUnauthorized, rw.Code)
	require.Empty(t, service.Inputs)
}

func TestLogOutWithUnknownSession(t *testing.T) {
	service := services.NewFakeService[logout.Input, logout.Result]()
	service.ReturnError = user.ErrSessionDoesNotExist

	rw := serve(service, "Bearer token-1")

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}
