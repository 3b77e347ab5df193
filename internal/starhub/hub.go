// Package starhub holds the in-memory realtime core: presence (which live
// connection owns which star), the pairing handshake between two
// connections, and event relay inside established sessions. All state here
// is process-local and vanishes on restart.
package starhub

import (
	"log"
	"sync"

	"unsent/backend/internal/models"
	"unsent/backend/internal/storage"

	"github.com/google/uuid"
)

// Hub owns the live client set and the three presence tables. Each table
// synchronizes independently; handlers run on the calling connection's read
// goroutine, so events from different connections proceed concurrently
// while a single connection's events stay ordered. Storage calls are made
// with no table lock held.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]Client

	Presence *Presence
	Pairing  *Pairing
	Relay    *Relay

	Storage storage.Storage
}

func NewHub(s storage.Storage) *Hub {
	return &Hub{
		clients:  make(map[string]Client),
		Presence: NewPresence(),
		Pairing:  NewPairing(),
		Relay:    NewRelay(),
		Storage:  s,
	}
}

// Register adds the client, marks its connection live and confirms with a
// connected event.
func (h *Hub) Register(c Client) {
	connID := c.GetConnID()

	h.mu.Lock()
	h.clients[connID] = c
	h.mu.Unlock()

	h.Presence.Connect(connID)
	h.send(connID, models.Event{Type: models.EventConnected})
}

// Unregister reconciles all state touching the connection: presence
// ownership (with a stars_offline broadcast when stars were held), pending
// requests, and session memberships. Sessions themselves are kept. Calling
// it again for the same client, or for one that never registered, is a
// no-op.
func (h *Hub) Unregister(c Client) {
	connID := c.GetConnID()

	h.mu.Lock()
	_, registered := h.clients[connID]
	if registered {
		delete(h.clients, connID)
		c.Close()
	}
	h.mu.Unlock()
	if !registered {
		return
	}

	if offline := h.Presence.Disconnect(connID); len(offline) > 0 {
		h.broadcast(models.Event{Type: models.EventStarsOffline, StarIDs: offline})
	}
	if n := h.Pairing.CancelForConn(connID); n > 0 {
		log.Printf("Cancelled %d pending request(s) for connection %s", n, connID)
	}
	h.Relay.RemoveConn(connID)
}

// HandleEvent dispatches one inbound event for the client. Unknown types
// and malformed payloads are dropped; nothing here is fatal to the process.
func (h *Hub) HandleEvent(c Client, ev models.Event) {
	switch ev.Type {
	case models.EventRegisterStar:
		h.handleRegisterStar(c, ev)
	case models.EventGetActiveStars:
		h.handleGetActiveStars(c)
	case models.EventRequestThread:
		h.handleRequestThread(c, ev)
	case models.EventRespondThread:
		h.handleRespondThread(ev)
	case models.EventJoinThread:
		h.handleJoinThread(c, ev)
	case models.EventDraw:
		h.relay(c, ev, true)
	case models.EventMessage:
		h.relay(c, ev, false)
	case models.EventLeaveThread:
		h.handleLeaveThread(c, ev)
	default:
		log.Printf("Dropping unknown event %q from connection %s", ev.Type, c.GetConnID())
	}
}

func (h *Hub) handleRegisterStar(c Client, ev models.Event) {
	snapshot, ok := h.Presence.RegisterStar(c.GetConnID(), ev.StarID)
	if !ok {
		return
	}
	// Everyone sees the registry state as of this registration.
	h.broadcast(models.Event{Type: models.EventActiveStars, StarIDs: snapshot})
}

func (h *Hub) handleGetActiveStars(c Client) {
	h.send(c.GetConnID(), models.Event{
		Type:    models.EventActiveStars,
		StarIDs: h.Presence.ActiveStars(),
	})
}

func (h *Hub) handleRequestThread(c Client, ev models.Event) {
	requesterConnID := c.GetConnID()

	ownerConnID, ok := h.Presence.Owner(ev.StarID)
	if ev.StarID == "" || !ok {
		h.send(requesterConnID, models.Event{Type: models.EventThreadUnavailable})
		return
	}
	if ev.RequesterStarID == "" {
		h.send(requesterConnID, models.Event{
			Type:    models.EventThreadRequestError,
			Message: "Missing requester star ID",
		})
		return
	}
	if ownerConnID == requesterConnID {
		// Cannot open a session with yourself.
		return
	}

	req := PendingRequest{
		ID:              uuid.New().String(),
		OwnerConnID:     ownerConnID,
		RequesterConnID: requesterConnID,
		RequesterStarID: ev.RequesterStarID,
		TargetStarID:    ev.StarID,
	}
	h.Pairing.Add(req)

	// Load the requester's star to show the owner who is asking. No table
	// lock is held across this call. If the star cannot be loaded the
	// request is withdrawn before the requester hears about the failure, so
	// no request the owner never saw stays pending.
	star, err := h.Storage.GetStarByID(ev.RequesterStarID)
	if err != nil || star == nil {
		if err != nil {
			log.Printf("ERROR: Failed to fetch requester star %s: %v", ev.RequesterStarID, err)
		}
		h.Pairing.Remove(req.ID)
		h.send(requesterConnID, models.Event{
			Type:    models.EventThreadRequestError,
			Message: "Could not load star data",
		})
		return
	}

	h.send(ownerConnID, models.Event{
		Type:          models.EventThreadRequest,
		RequestID:     req.ID,
		RequesterStar: star,
	})
}

func (h *Hub) handleRespondThread(ev models.Event) {
	// Unknown or already-consumed request IDs are no-ops, which shields
	// against duplicate and late responses.
	req, ok := h.Pairing.Take(ev.RequestID)
	if !ok {
		return
	}

	if !ev.Accepted {
		h.send(req.RequesterConnID, models.Event{Type: models.EventThreadDeclined})
		return
	}

	sessionID := uuid.New().String()
	h.Relay.Create(sessionID, req.OwnerConnID, req.RequesterConnID)

	accepted := models.Event{Type: models.EventThreadAccepted, ThreadID: sessionID}
	h.send(req.OwnerConnID, accepted)
	h.send(req.RequesterConnID, accepted)
}

func (h *Hub) handleJoinThread(c Client, ev models.Event) {
	if ev.ThreadID == "" {
		return
	}
	h.Relay.Join(ev.ThreadID, c.GetConnID())
}

func (h *Hub) handleLeaveThread(c Client, ev models.Event) {
	if ev.ThreadID == "" {
		return
	}
	h.Relay.Leave(ev.ThreadID, c.GetConnID())
}

// relay forwards a draw or chat event to the members of an established
// session. Drawing excludes the sender to avoid echoing strokes; chat goes
// to everyone including the sender.
func (h *Hub) relay(c Client, ev models.Event, excludeSender bool) {
	recipients, ok := h.Relay.Recipients(ev.ThreadID, c.GetConnID(), excludeSender)
	if !ok {
		return
	}

	out := models.Event{Type: ev.Type, ThreadID: ev.ThreadID, Data: ev.Data}
	for _, connID := range recipients {
		h.send(connID, out)
	}
}

// send delivers an event to one connection. A full send buffer drops the
// event rather than blocking the hub; the write pump is expected to keep up
// for healthy connections.
func (h *Hub) send(connID string, ev models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.clients[connID]
	if !ok {
		return
	}
	select {
	case c.GetSendChannel() <- ev:
	default:
		log.Printf("WARNING: Dropping %s event for connection %s: send buffer full", ev.Type, connID)
	}
}

// broadcast delivers an event to every live connection.
func (h *Hub) broadcast(ev models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, c := range h.clients {
		select {
		case c.GetSendChannel() <- ev:
		default:
			log.Printf("WARNING: Dropping %s broadcast for connection %s: send buffer full", ev.Type, connID)
		}
	}
}
