package logout

import (
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	logout "inventory/internal/core/services/log_out"
	"inventory/internal/http/handlers/auth"
	"inventory/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		response.RenderUnauthenticated(rw)
		return
	}
	_, err := h.service.Run(r.Context(), logout.Input{Token: token})
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		response.RenderUnauthenticated(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.RenderMessage(rw, "Successfully logged out", http.StatusOK)
}
