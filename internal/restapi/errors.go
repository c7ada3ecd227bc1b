package restapi

import (
	"encoding/json"
	"net/http"
)

func (api *RestAPI) errorResponse(w http.ResponseWriter, status int, text string) {
	response := struct {
		Error string `json:"error"`
	}{
		Error: text,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}

// badRequestResponse sends a 400 Bad Request with the given message, used for
// input errors like a missing feed snapshot.
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, http.StatusBadRequest, err.Error())
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
	api.errorResponse(w, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific
// validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
