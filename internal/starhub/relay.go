package starhub

import (
	"sort"
	"sync"
)

// Relay tracks established sessions and their membership. The two tables
// are deliberately distinct: membership is a lower-level primitive than
// session existence, so joins for unknown session IDs are bookkept (they
// deliver nothing until the session exists), and a session outlives an
// empty membership set. Members leaving or disconnecting never deletes it,
// which tolerates reconnection races. No delete operation exists.
type Relay struct {
	mu       sync.Mutex
	sessions map[string]struct{}
	members  map[string]map[string]struct{}
}

func NewRelay() *Relay {
	return &Relay{
		sessions: make(map[string]struct{}),
		members:  make(map[string]map[string]struct{}),
	}
}

// Create establishes the session and enrolls the given connections.
func (r *Relay) Create(sessionID string, connIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = struct{}{}
	set := r.members[sessionID]
	if set == nil {
		set = make(map[string]struct{}, len(connIDs))
		r.members[sessionID] = set
	}
	for _, id := range connIDs {
		set[id] = struct{}{}
	}
}

// Join adds the connection to the session's membership, whether or not the
// session exists yet.
func (r *Relay) Join(sessionID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.members[sessionID]
	if set == nil {
		set = make(map[string]struct{}, 2)
		r.members[sessionID] = set
	}
	set[connID] = struct{}{}
}

// Leave removes the connection from the session's membership. Idempotent;
// the session itself is kept even at zero members.
func (r *Relay) Leave(sessionID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.members[sessionID]; ok {
		delete(set, connID)
	}
}

// RemoveConn drops the connection from every session's membership.
func (r *Relay) RemoveConn(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, set := range r.members {
		delete(set, connID)
	}
}

// Exists reports whether the session has been established.
func (r *Relay) Exists(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[sessionID]
	return ok
}

// Recipients returns the members an event for the session should reach,
// sorted, optionally excluding the sender. ok is false when the session has
// not been established, in which case the event must be dropped.
func (r *Relay) Recipients(sessionID, senderConnID string, excludeSender bool) (recipients []string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, established := r.sessions[sessionID]; !established {
		return nil, false
	}
	for connID := range r.members[sessionID] {
		if excludeSender && connID == senderConnID {
			continue
		}
		recipients = append(recipients, connID)
	}
	sort.Strings(recipients)
	return recipients, true
}
