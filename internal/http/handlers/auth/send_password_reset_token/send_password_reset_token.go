package sendpasswordresettoken

import (
	"encoding/json"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/send_password_reset_token"
	"inventory/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const TEST_TOKEN_HEADER = "x-test-password-reset-token"

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(
	service services.Service[service.Input, service.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// Validate checks the email in the normalized form it is stored in.
func (i Input) Validate() error {
	i.Email = string(c.NewEmail(i.Email))
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, c.MAX_EMAIL_LEN)),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "User doesn't exist", http.StatusNotFound)
		default:
			response.RenderError(rw, "Could not send password reset token", http.StatusBadRequest)
		}
		return
	}

	if h.isTestMode {
		rw.Header().Set(TEST_TOKEN_HEADER, string(result.Token))
	}
	response.RenderMessage(rw, "Check your email address", http.StatusOK)
}
