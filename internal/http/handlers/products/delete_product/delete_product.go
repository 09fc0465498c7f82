package deleteproduct

import (
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/delete_product"
	"inventory/internal/http/handlers/products"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	productID, err := products.ParseProductID(r)
	if err != nil {
		products.RenderNotFound(rw)
		return
	}

	if _, err := h.service.Run(r.Context(), service.Input{ProductID: productID}); err != nil {
		products.RenderServiceError(rw, err)
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}
