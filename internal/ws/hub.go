package ws

import (
	"context"
	"log"
	"sync"
)

const (
	eventBuffer        = 256
	subscriptionBuffer = 128
)

// Hub fans catalog events out to every subscribed client. Run must be
// started before clients register.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Client]struct{}

	events chan []byte
	joins  chan *Client
	leaves chan *Client

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Client]struct{}),
		events:      make(chan []byte, eventBuffer),
		joins:       make(chan *Client, subscriptionBuffer),
		leaves:      make(chan *Client, subscriptionBuffer),
		logger:      logger,
	}
}

// Run serves subscriptions and events until ctx is cancelled, then closes
// every remaining subscriber.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			n := h.dropAll()
			h.logf("[WS] hub stopped subscribers_closed=%d", n)
			return
		case c := <-h.joins:
			if c != nil {
				h.logf("[WS] subscriber joined subscribers=%d", h.add(c))
			}
		case c := <-h.leaves:
			if c != nil && h.drop(c) {
				h.logf("[WS] subscriber left subscribers=%d", h.ClientCount())
			}
		case msg := <-h.events:
			h.fanOut(msg)
		}
	}
}

func (h *Hub) add(c *Client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[c] = struct{}{}
	return len(h.subscribers)
}

func (h *Hub) drop(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[c]; !ok {
		return false
	}
	delete(h.subscribers, c)
	close(c.send)
	return true
}

func (h *Hub) dropAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.subscribers)
	for c := range h.subscribers {
		delete(h.subscribers, c)
		close(c.send)
	}
	return n
}

// fanOut delivers msg to every subscriber. A subscriber whose send buffer is
// full is dropped instead of stalling the others.
func (h *Hub) fanOut(msg []byte) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.subscribers))
	for c := range h.subscribers {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		select {
		case c.send <- msg:
			delivered++
		default:
			h.drop(c)
			h.logf("[WS] dropped slow subscriber")
		}
	}
	h.logf("[WS] catalog event delivered=%d subscribers=%d", delivered, len(targets))
}

func (h *Hub) Register(c *Client) {
	if h == nil {
		return
	}
	h.joins <- c
}

func (h *Hub) Unregister(c *Client) {
	if h == nil {
		return
	}
	h.leaves <- c
}

// Broadcast queues msg for delivery. It never blocks; when the queue is full
// the event is discarded.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- msg:
	default:
		h.logf("[WS] catalog event dropped queue_full=%d", eventBuffer)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
