package starhub

import "sync"

// PendingRequest is an in-flight consent proposal to open a session between
// two live connections. It exists from creation until exactly one terminal
// transition consumes it: accept, decline, or either party disconnecting.
type PendingRequest struct {
	ID              string
	OwnerConnID     string
	RequesterConnID string
	RequesterStarID string
	TargetStarID    string
}

// Pairing is the mutex-guarded table of pending requests.
type Pairing struct {
	mu      sync.Mutex
	pending map[string]PendingRequest
}

func NewPairing() *Pairing {
	return &Pairing{pending: make(map[string]PendingRequest)}
}

func (p *Pairing) Add(req PendingRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending[req.ID] = req
}

// Take consumes the request, returning it at most once. A second Take for
// the same ID (duplicate or late response) reports ok=false.
func (p *Pairing) Take(requestID string) (PendingRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	req, ok := p.pending[requestID]
	if ok {
		delete(p.pending, requestID)
	}
	return req, ok
}

// Remove discards the request without treating it as resolved. Used when a
// request could not be delivered to the owner.
func (p *Pairing) Remove(requestID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pending, requestID)
}

// CancelForConn removes every pending request that references the
// connection as owner or requester and returns how many were dropped. The
// remote party is not notified; under the ephemeral model it simply never
// hears back.
func (p *Pairing) CancelForConn(connID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := 0
	for id, req := range p.pending {
		if req.OwnerConnID == connID || req.RequesterConnID == connID {
			delete(p.pending, id)
			removed++
		}
	}
	return removed
}

// Has reports whether a request is still pending.
func (p *Pairing) Has(requestID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.pending[requestID]
	return ok
}
