package card

import (
	"time"

	"github.com/google/uuid"
)

// Direction is the side a dismissed card leaves through
type Direction uint8

const (
	DirRight Direction = iota // Like
	DirLeft                   // Dislike
)

// String returns human-readable direction name
func (d Direction) String() string {
	if d == DirLeft {
		return "Left"
	}
	return "Right"
}

// ExitDecision is created once per dismissed profile instance
type ExitDecision struct {
	ID          uuid.UUID
	ProfileID   string
	Direction   Direction
	CommittedAt time.Time
}

// Liked reports whether the decision is a like
func (d ExitDecision) Liked() bool {
	return d.Direction == DirRight
}
