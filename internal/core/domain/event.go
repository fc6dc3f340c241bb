package domain

import "time"

// EventType distinguishes tracked events.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
)

// Cooldown returns the dedup window for the event type.
func (t EventType) Cooldown() time.Duration {
	switch t {
	case EventImpression:
		return time.Hour
	case EventClick:
		return 5 * time.Minute
	}
	return 0
}

// TrackingEvent is a recorded impression or click. It is emitted after the
// counter update succeeds and carries no personal data besides the hashed
// client key.
type TrackingEvent struct {
	Type          EventType `json:"type"`
	AdID          int64     `json:"ad_id"`
	AdUUID        string    `json:"ad_uuid"`
	PlacementCode string    `json:"placement"`
	ClientKey     string    `json:"client_key,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// TrackOutcome is the result of processing a tracking request for an ad
// that exists.
type TrackOutcome int

const (
	// Recorded means the counter was incremented.
	Recorded TrackOutcome = iota
	// Duplicate means the dedup window suppressed the event.
	Duplicate
	// Inactive means the ad is outside its window or switched off.
	Inactive
)

func (o TrackOutcome) String() string {
	switch o {
	case Recorded:
		return "recorded"
	case Duplicate:
		return "duplicate"
	case Inactive:
		return "inactive"
	}
	return "unknown"
}
