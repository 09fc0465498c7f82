package deleteproduct

import (
	"inventory/internal/core/domain/product"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/delete_product"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func serve(s *services.FakeService[service.Input, service.Result], url string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodDelete, "/v1/products/{productID}", New(s))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodDelete, url, nil))
	return rw
}

func TestDeleteProduct(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result]()

	rw := serve(s, "/v1/products/3")

	require.Equal(t, http.StatusNoContent, rw.Code)
	require.Empty(t, rw.Body.String())
	require.Equal(t, []service.Input{{ProductID: 3}}, s.Inputs)
}

func TestDeleteMissingProduct(t *testing.T) {
	s := services.NewFakeService[service.Input, service.Result]()
	s.ReturnError = product.ErrProductDoesNotExist

	rw := serve(s, "/v1/products/3")

	require.Equal(t, http.StatusNotFound, rw.Code)
}
