package listuserproducts

import (
	"fmt"
	"inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/list_user_products"
	"inventory/internal/http/handlers/products"
	"inventory/internal/http/handlers/response"
	"net/http"
	"strconv"
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
	page, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		response.RenderError(rw, "invalid page query parameter", http.StatusBadRequest)
		return
	}
	perPage, err := parsePerPage(r.URL.Query().Get("per_page"))
	if err != nil {
		response.RenderError(rw, "invalid per_page query parameter", http.StatusBadRequest)
		return
	}
	if (page-1)*perPage > service.MAX_OFFSET {
		response.RenderError(rw, "invalid page query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		OrderBy: product.OrderByIDAsc,
		Limit:   common.Some(perPage),
		Offset:  (page - 1) * perPage,
	})
	if err != nil {
		products.RenderServiceError(rw, err)
		return
	}

	data := make([]response.Product, 0, len(result.Products))
	for _, p := range result.Products {
		item := response.Product{}
		item.FromDomainType(p)
		data = append(data, item)
	}
	response.Render(
		rw,
		response.NewPage(data, requestPath(r), page, perPage, result.TotalCount),
		http.StatusOK,
	)
}

func requestPath(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.Path)
}

func parsePage(raw string) (uint, error) {
	if raw == "" {
		return 1, nil
	}
	p, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if p == 0 {
		return 0, fmt.Errorf("page must be positive")
	}
	return uint(p), nil
}

func parsePerPage(raw string) (uint, error) {
	if raw == "" {
		return service.DEFAULT_LIMIT, nil
	}
	p, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if p == 0 || p > service.MAX_LIMIT {
		return 0, fmt.Errorf("per_page must be between 1 and %d", service.MAX_LIMIT)
	}
	return uint(p), nil
}
