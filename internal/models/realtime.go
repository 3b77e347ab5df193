package models

import "encoding/json"

// Inbound event types, sent by clients over the realtime channel.
const (
	EventRegisterStar   = "register_star"
	EventGetActiveStars = "get_active_stars"
	EventRequestThread  = "request_thread"
	EventRespondThread  = "respond_thread"
	EventJoinThread     = "join_thread"
	EventDraw           = "draw"
	EventMessage        = "message"
	EventLeaveThread    = "leave_thread"
)

// Outbound event types, sent by the hub to clients.
const (
	EventConnected          = "connected"
	EventStarsOffline       = "stars_offline"
	EventActiveStars        = "active_stars"
	EventThreadUnavailable  = "thread_unavailable"
	EventThreadRequestError = "thread_request_error"
	EventThreadRequest      = "thread_request"
	EventThreadDeclined     = "thread_declined"
	EventThreadAccepted     = "thread_accepted"
)

// Event is the single wire shape for both directions of the realtime
// channel. Type discriminates; all other fields are optional and validated
// by the handler for the given type. Unknown or malformed events are
// dropped, never fatal.
type Event struct {
	Type string `json:"type"`

	// register_star, request_thread (target star)
	StarID string `json:"star_id,omitempty"`
	// request_thread
	RequesterStarID string `json:"requester_star_id,omitempty"`
	// respond_thread
	RequestID string `json:"request_id,omitempty"`
	Accepted  bool   `json:"accepted,omitempty"`
	// join_thread, draw, message, leave_thread, thread_accepted
	ThreadID string `json:"thread_id,omitempty"`
	// draw strokes / chat payload, relayed opaquely
	Data json.RawMessage `json:"data,omitempty"`

	// stars_offline, active_stars
	StarIDs []string `json:"star_ids,omitempty"`
	// thread_request
	RequesterStar *Star `json:"requester_star,omitempty"`
	// thread_request_error
	Message string `json:"message,omitempty"`
}
