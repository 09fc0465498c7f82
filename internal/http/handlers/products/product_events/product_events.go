package productevents

import (
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/get_user_by_session_token"
	"inventory/internal/http/handlers/auth"
	"inventory/internal/http/handlers/response"
	sseevents "inventory/internal/implementations/product_events"
	"net/http"
)

type Handler struct {
	log       logging.Logger
	service   services.Service[service.Input, service.Result]
	sseServer http.Handler
}

// New creates the handler subscribing the authenticated user to the stream
// of their product events. sseServer is expected to create streams on demand.
func New(
	log logging.Logger,
	sseServer http.Handler,
	service services.Service[service.Input, service.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, sseServer: sseServer, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		response.RenderUnauthenticated(rw)
		return
	}
	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthenticated(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	streamID := sseevents.StreamID(result.User.ID)
	r = r.Clone(r.Context())
	query := r.URL.Query()
	query.Set("stream", streamID)
	r.URL.RawQuery = query.Encode()

	h.log.Info(
		r.Context(),
		"Subscribed to product events.",
		logging.Entry("userID", result.User.ID),
		logging.Entry("streamID", streamID),
	)
	h.sseServer.ServeHTTP(rw, r)
	h.log.Info(r.Context(), "Unsubscribed from product events.", logging.Entry("userID", result.User.ID))
}
