package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/sitedraft"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	sitedraft.ECONFLICT:  http.StatusConflict,
	sitedraft.EINVALID:   http.StatusBadRequest,
	sitedraft.ENOTFOUND:  http.StatusNotFound,
	sitedraft.ERATELIMIT: http.StatusTooManyRequests,
	sitedraft.EINTERNAL:  http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details are not sent to the client.
func Error(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	code, message := sitedraft.ErrorCode(err), sitedraft.ErrorMessage(err)
	if code == sitedraft.EINTERNAL {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

// writeJSON encodes v without HTML escaping; payloads carry markup.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return sitedraft.Errorf(sitedraft.EINVALID, "Invalid JSON body.")
	}
	return nil
}
