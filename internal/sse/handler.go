package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GemClicker_Go/internal/logger"
)

// stream writes framed events to one response
type stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	log     *slog.Logger
}

// send writes evt and flushes. It returns false once the peer is gone.
func (s stream) send(evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		s.log.Error(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return true
	}
	if _, err := s.w.Write(msg); err != nil {
		s.log.Warn(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return false
	}
	s.flusher.Flush()
	return true
}

// Handler serves a live game event stream. The optional types query parameter
// narrows it to a comma-separated list of event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")

		var types []string
		if q := r.URL.Query().Get(QueryParamTypes); q != "" {
			types = strings.Split(q, ",")
		}

		client := hub.Register(types)
		log := logger.FromContext(r.Context()).With("client_id", client.ID)
		log.Info(LogMsgClientConnected, "filters", types, "total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected)
		}()

		out := stream{w: w, flusher: flusher, log: log}
		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().UnixMilli(),
			Payload:   ConnectedPayload{ClientID: client.ID, Filters: types},
		}
		if !out.send(hello) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.Events:
				if !open || !out.send(evt) {
					return
				}
			case now := <-keepalive.C:
				if !out.send(Event{Type: EventTypeKeepalive, Timestamp: now.UnixMilli()}) {
					return
				}
			}
		}
	}
}
