package sse

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/metrics"
)

// Event is one message on a stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one open stream. Events is closed when the hub drops the client.
type Client struct {
	ID     string
	Events chan Event
	types  map[string]struct{}
}

func newClient(eventTypes []string) *Client {
	c := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t == "" {
			continue
		}
		if c.types == nil {
			c.types = make(map[string]struct{})
		}
		c.types[t] = struct{}{}
	}
	return c
}

// Wants reports whether the stream asked for eventType. A stream without
// filters wants everything.
func (c *Client) Wants(eventType string) bool {
	if c.types == nil {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Hub fans game events out to open streams from a single goroutine.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	events     chan Event
	join       chan *Client
	leave      chan string
	done       chan struct{}
	stopOnce   sync.Once
	loopExited sync.WaitGroup
}

// NewHub creates a stopped hub. Call Start before registering streams.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		events:  make(chan Event, BroadcastBufferSize),
		join:    make(chan *Client, ClientChannelBuffer),
		leave:   make(chan string, ClientChannelBuffer),
		done:    make(chan struct{}),
	}
}

// Start launches the fan-out loop.
func (h *Hub) Start() {
	h.loopExited.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every stream. It is safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.loopExited.Wait()

		h.mu.Lock()
		for id, c := range h.clients {
			close(c.Events)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.StreamClients.Set(0)
	})
}

func (h *Hub) loop() {
	defer h.loopExited.Done()

	for {
		select {
		case c := <-h.join:
			h.add(c)
		case id := <-h.leave:
			h.remove(id)
		case evt := <-h.events:
			h.fanOut(evt)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	n := len(h.clients)
	h.mu.Unlock()
	metrics.StreamClients.Set(float64(n))
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		close(c.Events)
		delete(h.clients, id)
	}
	n := len(h.clients)
	h.mu.Unlock()
	metrics.StreamClients.Set(float64(n))
}

// fanOut never blocks on a stream: a full client buffer loses the event.
func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if !c.Wants(evt.Type) {
			continue
		}
		select {
		case c.Events <- evt:
		default:
			metrics.StreamEventsDropped.WithLabelValues(metrics.DropReasonClientSlow).Inc()
		}
	}
}

// Register opens a stream for the given event types; none means all. After
// Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := newClient(eventTypes)

	select {
	case <-h.done:
		close(c.Events)
		return c
	default:
	}

	select {
	case h.join <- c:
	case <-h.done:
		close(c.Events)
	}
	return c
}

// Unregister closes the stream with the given id.
func (h *Hub) Unregister(clientID string) {
	select {
	case h.leave <- clientID:
	case <-h.done:
	}
}

// Broadcast queues an event for every interested stream without blocking.
// It reports false when the hub queue was full and the event was dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) bool {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}

	select {
	case h.events <- evt:
		return true
	default:
		metrics.StreamEventsDropped.WithLabelValues(metrics.DropReasonHubFull).Inc()
		logger.Warn(LogMsgBroadcastDropped, "event_type", eventType)
		return false
	}
}

// ClientCount returns the number of open streams.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data)), nil
}
