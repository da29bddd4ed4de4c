package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/finance-server/internal/logging"
)

// Handler answers liveness probes. It sits outside the Huma API so it keeps
// working even when request middleware (identity, OpenAPI validation) is
// misconfigured.
type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
