package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/GemClicker_Go/internal/notification"
)

// NotificationFeed is the toast feed read by front ends.
type NotificationFeed interface {
	List() []notification.Notification
	Dismiss(id uuid.UUID) bool
	Clear()
}

// HandleListNotifications returns unexpired notifications, oldest first.
func HandleListNotifications(feed NotificationFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := feed.List()
		if items == nil {
			items = []notification.Notification{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleDismissNotification removes one notification before it expires.
func HandleDismissNotification(feed NotificationFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, ParamID))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidNotificationID)
			return
		}
		if !feed.Dismiss(id) {
			respondError(w, http.StatusNotFound, ErrMsgNotificationNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleClearNotifications drops every notification.
func HandleClearNotifications(feed NotificationFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed.Clear()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationsClear})
	}
}
