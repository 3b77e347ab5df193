package starhub

import (
	"sort"
	"sync"
)

// Presence tracks which connections are live and which connection currently
// claims authorship of each star. Both tables sit behind one mutex so a
// disconnect removes the connection and its ownership entries atomically:
// the ownership map never holds an entry for a dead connection.
type Presence struct {
	mu     sync.Mutex
	live   map[string]struct{}
	owners map[string]string // star ID -> owning connection ID
}

func NewPresence() *Presence {
	return &Presence{
		live:   make(map[string]struct{}),
		owners: make(map[string]string),
	}
}

// Connect marks the connection as live.
func (p *Presence) Connect(connID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.live[connID] = struct{}{}
}

// Disconnect removes the connection from the live set and strips every
// ownership entry it held, returning the affected star IDs (sorted).
// Disconnecting an unknown connection returns nil.
func (p *Presence) Disconnect(connID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.live, connID)

	var released []string
	for starID, owner := range p.owners {
		if owner == connID {
			released = append(released, starID)
			delete(p.owners, starID)
		}
	}
	sort.Strings(released)
	return released
}

// RegisterStar records connID as the owner of starID, overwriting any
// previous owner (last writer wins). It returns the full active-star
// snapshot taken under the same lock, so broadcasts built from it are never
// stale. Registration is refused (ok=false) for an empty star ID or a
// connection that is not live.
func (p *Presence) RegisterStar(connID, starID string) (snapshot []string, ok bool) {
	if starID == "" {
		return nil, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, live := p.live[connID]; !live {
		return nil, false
	}
	p.owners[starID] = connID
	return p.activeStarsLocked(), true
}

// ActiveStars returns a sorted snapshot of all currently owned star IDs.
func (p *Presence) ActiveStars() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeStarsLocked()
}

// Owner returns the connection currently owning the star, if any.
func (p *Presence) Owner(starID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	connID, ok := p.owners[starID]
	return connID, ok
}

func (p *Presence) activeStarsLocked() []string {
	stars := make([]string, 0, len(p.owners))
	for starID := range p.owners {
		stars = append(stars, starID)
	}
	sort.Strings(stars)
	return stars
}
