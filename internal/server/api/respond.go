package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError reports a failed store operation as 500 with the driver's
// message as details.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(r.Context(), msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg, Details: storeMessage(err)})
}

// storeMessage reduces a store error to a string safe to return to clients.
// PostgreSQL errors are shortened to their primary message.
func storeMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
