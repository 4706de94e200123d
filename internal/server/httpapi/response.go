package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var statusByReason = map[string]int{
	common.ReasonAccessDenied:           http.StatusForbidden,
	common.ReasonOracleUnavailable:      http.StatusForbidden,
	common.ReasonTokenInvalidOrExpired:  http.StatusForbidden,
	common.ReasonTokenHandleMismatch:    http.StatusForbidden,
	common.ReasonContentUnavailable:     http.StatusNotFound,
	common.ReasonRegistrationIncomplete: http.StatusConflict,
	common.ReasonIntegrityFailure:       http.StatusInternalServerError,
	common.ReasonInvalidRequest:         http.StatusBadRequest,
	common.ReasonUnauthorized:           http.StatusUnauthorized,
	common.ReasonInternal:               http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	reason := common.Reason(err)
	status := statusByReason[reason]

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		status = http.StatusRequestEntityTooLarge
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "reason", reason, "error", err)
		if reason == common.ReasonInternal {
			message = common.ErrorInternal.Error()
		}
	}

	writeJSON(w, status, errorResponse{Error: reason, Message: message})
}

// writeContent serves plaintext with the given disposition ("attachment" or
// "inline").
func writeContent(w http.ResponseWriter, c *models.Content, disposition string) {
	if c.FileName != "" {
		if v := mime.FormatMediaType(disposition, map[string]string{"filename": c.FileName}); v != "" {
			disposition = v
		}
	}
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Type", c.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(c.Data)
}
