package response

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const TIME_FORMAT = "2006-01-02 15:04:05"

type Message struct {
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func RenderUnauthenticated(rw http.ResponseWriter) {
	RenderError(rw, "Unauthenticated", http.StatusUnauthorized)
}

func RenderForbidden(rw http.ResponseWriter) {
	RenderError(rw, "Unauthorized", http.StatusForbidden)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "Internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "Too many requests", http.StatusTooManyRequests)
}

func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, "Invalid request data", http.StatusBadRequest)
}

// RenderValidationError renders field errors of an ozzo validation failure.
func RenderValidationError(rw http.ResponseWriter, err error) {
	errs, ok := err.(validation.Errors)
	if !ok {
		RenderInvalidRequest(rw)
		return
	}
	Render(rw, validationErrorResponse{Message: "The given data was invalid", Errors: errs}, http.StatusBadRequest)
}

func RenderMessage(rw http.ResponseWriter, msg string, status int) {
	Render(rw, Message{Message: msg}, status)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	RenderMessage(rw, msg, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
