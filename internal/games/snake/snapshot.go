package snake

import "github.com/alcherk/snake-arena/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Round       int
	Ticks       int
	Score       int
	IntervalMs  int64
	PlayerLen   int
	PlayerHead  core.Point
	Heading     core.Direction
	EnemyAlive  bool
	EnemyHead   core.Point
	EnemyLen    int
	Respawns    int
	Food        []core.Point
	Pending     int
	Paused      bool
	WindowSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:       g.round,
		Ticks:       g.ticks,
		Score:       g.score,
		IntervalMs:  g.interval.Milliseconds(),
		PlayerLen:   g.player.Len(),
		PlayerHead:  g.player.Head(),
		Heading:     g.player.Heading(),
		EnemyAlive:  g.enemy.Alive(),
		EnemyHead:   g.enemy.Head(),
		EnemyLen:    g.enemy.Len(),
		Respawns:    g.respawns,
		Food:        append([]core.Point(nil), g.food.Positions()...),
		Pending:     g.sched.Pending(),
		Paused:      g.paused,
		WindowSmall: g.tooSmall,
	}
}
