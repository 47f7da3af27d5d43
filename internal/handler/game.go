package handler

import (
	"context"
	"net/http"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/logger"
)

// LanguageRequest is the body of a language change.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,max=35"`
}

// LifecycleRequest reports a host visibility transition.
type LifecycleRequest struct {
	State string `json:"state" validate:"required,oneof=hidden visible"`
}

// ClickResponse is the outcome of a manual action together with the balance
// after it.
type ClickResponse struct {
	Amount     int64        `json:"amount"`
	IsCritical bool         `json:"is_critical"`
	Currency   domain.Coins `json:"currency"`
}

// ActionResponse acknowledges an action and carries the refreshed stats.
type ActionResponse struct {
	Message string     `json:"message"`
	Stats   game.Stats `json:"stats"`
}

// HandleClick performs one manual action.
func HandleClick(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := svc.ManualAction(r.Context())
		if result.IsCritical {
			logger.FromContext(r.Context()).Debug("Critical click", "amount", result.Amount)
		}
		respondJSON(w, http.StatusOK, ClickResponse{
			Amount:     result.Amount,
			IsCritical: result.IsCritical,
			Currency:   svc.Stats().Currency,
		})
	}
}

// HandleBuyUpgrade buys the next level of the upgrade in the path.
func HandleBuyUpgrade(svc game.Service) http.HandlerFunc {
	return handleIDAction(svc, game.ActionBuyUpgrade, MsgUpgradeBought, svc.BuyUpgrade)
}

// HandleClaimQuest claims the quest in the path.
func HandleClaimQuest(svc game.Service) http.HandlerFunc {
	return handleIDAction(svc, game.ActionClaimQuest, MsgQuestClaimed, svc.ClaimQuest)
}

// HandleBuySkill buys the next level of the skill node in the path.
func HandleBuySkill(svc game.Service) http.HandlerFunc {
	return handleIDAction(svc, game.ActionBuySkill, MsgSkillBought, svc.BuySkill)
}

// HandlePrestige ascends when the prestige threshold is reached.
func HandlePrestige(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Prestige(r.Context()); err != nil {
			respondServiceError(w, r, game.ActionPrestige, err)
			return
		}
		respondJSON(w, http.StatusOK, ActionResponse{Message: MsgAscended, Stats: svc.Stats()})
	}
}

// HandleSetLanguage changes the UI language.
func HandleSetLanguage(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set language"); err != nil {
			return
		}
		if err := svc.SetLanguage(r.Context(), req.Language); err != nil {
			respondServiceError(w, r, game.ActionSetLanguage, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgLanguageChanged,
			Data:    LanguageRequest{Language: string(svc.Snapshot().Language)},
		})
	}
}

// HandleSave saves the game now.
func HandleSave(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ManualSave(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgActionFailed, "action", game.ActionManualSave, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameSaved})
	}
}

// HandleReset deletes the save and starts over.
func HandleReset(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.HardReset(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgActionFailed, "action", game.ActionHardReset, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgResetFailed)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameReset})
	}
}

// HandleLifecycle records a visibility change of the front end.
func HandleLifecycle(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LifecycleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Lifecycle"); err != nil {
			return
		}
		svc.OnLifecycle(r.Context(), game.Lifecycle(req.State))
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLifecycleRecorded})
	}
}

// handleIDAction runs an action keyed by the catalog id in the path.
func handleIDAction(svc game.Service, action, okMsg string, do func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogID(w, r)
		if !ok {
			return
		}
		if err := do(r.Context(), id); err != nil {
			respondServiceError(w, r, action, err)
			return
		}
		respondJSON(w, http.StatusOK, ActionResponse{Message: okMsg, Stats: svc.Stats()})
	}
}
