package createproduct

import (
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/create_product"
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
	input := products.Input{}
	price, ok := input.Parse(rw, r)
	if !ok {
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    uint32(*input.Quantity),
		UnitPrice:   price,
	})
	if err != nil {
		products.RenderServiceError(rw, err)
		return
	}
	products.Render(rw, result.Product, http.StatusCreated)
}
