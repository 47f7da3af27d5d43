package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteBufferFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUnknownUpgradeError       = "Upgrade not found"
	ErrMsgUnknownQuestError         = "Quest not found"
	ErrMsgUnknownSkillError         = "Skill not found"
	ErrMsgNotEnoughCurrencyError    = "Not enough currency"
	ErrMsgNotEnoughSkillPointsError = "Not enough skill points"
	ErrMsgAlreadyClaimedError       = "Quest already claimed"
	ErrMsgQuestNotCompleteError     = "Quest is not complete yet"
	ErrMsgSkillLockedError          = "Skill is locked. Buy a parent skill first"
	ErrMsgMaxLevelError             = "Already at max level"
	ErrMsgPrestigeLockedError       = "Not enough currency to ascend"
	ErrMsgUnsupportedLanguageError  = "Unsupported language"
	ErrMsgInvalidInputError         = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-facing messages. Unknown ids are 400, preconditions the player can meet
// later are 403, and conflicts with the current state are 409.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusBadRequest, ErrMsgUnknownUpgradeError
	case errors.Is(err, domain.ErrUnknownQuest):
		return http.StatusBadRequest, ErrMsgUnknownQuestError
	case errors.Is(err, domain.ErrUnknownSkill):
		return http.StatusBadRequest, ErrMsgUnknownSkillError
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return http.StatusBadRequest, ErrMsgUnsupportedLanguageError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrSkillLocked):
		return http.StatusForbidden, ErrMsgSkillLockedError
	case errors.Is(err, domain.ErrQuestNotComplete):
		return http.StatusForbidden, ErrMsgQuestNotCompleteError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughCurrencyError
	case errors.Is(err, domain.ErrInsufficientSkillPoints):
		return http.StatusConflict, ErrMsgNotEnoughSkillPointsError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrMaxLevel):
		return http.StatusConflict, ErrMsgMaxLevelError
	case errors.Is(err, domain.ErrPrestigeLocked):
		return http.StatusConflict, ErrMsgPrestigeLockedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped response.
// Rejections are expected gameplay and log at debug.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	log := logger.FromContext(r.Context())
	if domain.IsRejection(err) {
		log.Debug(LogMsgActionRejected, "action", action, "reason", err)
	} else {
		log.Error(LogMsgActionFailed, "action", action, "error", err)
	}
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
