package me

import (
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/get_user_by_session_token"
	"inventory/internal/http/handlers/auth"
	"inventory/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		response.RenderUnauthenticated(rw)
		return
	}
	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthenticated(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
