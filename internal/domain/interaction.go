package domain

import "time"

// Interaction records one dispatched UI event, e.g. a slider move.
type Interaction struct {
	Event      string    `json:"event"`
	Value      int       `json:"value"`
	Points     int       `json:"points"` // states present in the rendered figure
	OccurredAt time.Time `json:"occurred_at"`
}
