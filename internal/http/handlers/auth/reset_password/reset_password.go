package resetpassword

import (
	"encoding/json"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	ratelimiter "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	resetpassword "inventory/internal/core/services/reset_password"
	"inventory/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
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
		validation.Field(&i.Token, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
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

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Email:       c.NewEmail(input.Email),
			Token:       user.PasswordResetToken(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, user.ErrInvalidPasswordResetToken):
			response.RenderError(rw, "Invalid password reset token", http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordResetExpired):
			response.RenderError(rw, "Password reset token has expired", http.StatusBadRequest)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "User doesn't exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.RenderMessage(rw, "Password has been successfully reset", http.StatusOK)
}
