package core

import "time"

// EndCause says what ended a round.
type EndCause int

const (
	CauseNone  EndCause = iota
	CauseWall           // Head left the board
	CauseSelf           // Head hit the own body
	CauseEnemy          // Head hit the enemy body
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// RoundResult is the outcome of one finished round.
type RoundResult struct {
	Variant       string
	Round         int
	Score         int
	Length        int // Player length at the end of the round
	Ticks         int // Logical updates run in the round
	Cause         EndCause
	EnemyRespawns int
	Duration      time.Duration // Game-clock time, pauses excluded
}

// Presenter receives round results. Implemented by the platform layer.
type Presenter interface {
	RoundOver(r RoundResult)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(r RoundResult)

// RoundOver calls f(r).
func (f PresenterFunc) RoundOver(r RoundResult) {
	f(r)
}
