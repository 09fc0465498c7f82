package loginwithemail

import (
	"encoding/json"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	loginwithemail "inventory/internal/core/services/log_in_with_email"
	"inventory/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[loginwithemail.Input, loginwithemail.Result]
}

func New(
	service services.Service[loginwithemail.Input, loginwithemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

// Validate checks the email in the normalized form it is stored in.
func (i Input) Validate() error {
	i.Email = string(c.NewEmail(i.Email))
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, c.MAX_EMAIL_LEN)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	result, err := h.service.Run(r.Context(), loginwithemail.Input{
		Email:    c.NewEmail(input.Email),
		Password: user.RawPassword(input.Password),
	})
	switch {
	case err == nil:
		response.Render(rw, Result{Token: string(result.Token)}, http.StatusOK)
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		response.RenderRateLimitExceeded(rw)
	case errors.Is(err, user.ErrInvalidCredentials):
		response.RenderError(rw, "Invalid credentials", http.StatusUnauthorized)
	default:
		response.RenderInternalError(rw)
	}
}
