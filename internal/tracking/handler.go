package tracking

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the public tracking endpoint. It gets its own
// tighter rate limit since it is unauthenticated and fans out to the
// carrier API.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(httprate.Limit(20, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))).
		Get("/{trackingNumber}", h.track)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	trackingNumber := strings.TrimSpace(chi.URLParam(r, "trackingNumber"))
	if trackingNumber == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "tracking number is required")
		return
	}

	info, err := h.service.Lookup(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, httpx.ErrNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", "tracking number not found")
		default:
			h.logger.Error("tracking lookup", slog.Any("error", err),
				slog.String("tracking_number", trackingNumber))
			httpx.Problem(w, http.StatusBadGateway, "Upstream Failure",
				"failed to track order, please try again later")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, info)
}
