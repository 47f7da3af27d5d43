package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GemClicker_Go/internal/logger"
)

// Path parameter names
const (
	ParamID = "id"
)

// catalogIDRule validates catalog identifiers taken from the URL.
const catalogIDRule = "required,max=64,catalogid"

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req LanguageRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set language"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetCatalogID reads the {id} path parameter and validates it as a catalog id.
// If ok is false the response has already been written.
func GetCatalogID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, ParamID)
	if err := GetValidator().ValidateVar(id, catalogIDRule); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgValidationFailed, "id", id, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return "", false
	}
	return id, true
}
