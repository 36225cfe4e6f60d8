package tracking

import (
	"net/http"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// Tracking publishes browse events. A nil Tracking disables publishing,
// callers must tolerate that.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request) error
	TrackListing(sessionId string, domain types.Domain, state types.FilterState, page int) error
	TrackPage(sessionId string, domain types.Domain, page int) error
	TrackClick(sessionId string, productId uint, position float32) error
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

type ListingEvent struct {
	*BaseEvent
	Domain types.Domain      `json:"domain"`
	State  types.FilterState `json:"filters"`
	Page   int               `json:"page"`
}

type PageEvent struct {
	*BaseEvent
	Domain types.Domain `json:"domain"`
	Page   int          `json:"page"`
}

type ClickEvent struct {
	*BaseEvent
	ProductId uint    `json:"product_id"`
	Position  float32 `json:"position"`
}
