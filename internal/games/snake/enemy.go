package snake

import "github.com/alcherk/snake-arena/internal/core"

// Enemy is a heuristically piloted snake. Once dead it stays dead; the
// controller replaces it with a new instance.
type Enemy struct {
	*Snake
	pilot Pilot
	alive bool
	ate   bool // Head landed on food during the last move
}

// NewEnemy creates a live enemy.
func NewEnemy(head core.Point, heading core.Direction, length int, pilot Pilot) *Enemy {
	return &Enemy{
		Snake: NewSnake(head, heading, length),
		pilot: pilot,
		alive: true,
	}
}

// Alive reports whether the enemy is still alive.
func (e *Enemy) Alive() bool {
	return e.alive
}

// Ate reports whether the last move landed on food.
func (e *Enemy) Ate() bool {
	return e.ate
}

// Advance picks a heading with the pilot and moves one cell. Leaving the
// board or touching the player's body behind the head kills the enemy.
// Dead enemies do not move.
func (e *Enemy) Advance(food []core.Point, player []core.Point, board core.Rect) {
	e.ate = false
	if !e.alive {
		return
	}

	e.Steer(e.pilot.Decide(View{
		Board:   board,
		Self:    e.body,
		Heading: e.next,
		Food:    food,
		Rival:   player,
	}))

	next := e.NextHead()
	if !board.Contains(next) {
		e.heading = e.next
		e.alive = false
		return
	}

	e.ate = core.ContainsPoint(food, next)
	e.Snake.Advance(e.ate)

	if len(player) > 1 && core.ContainsPoint(player[1:], e.Head()) {
		e.alive = false
	}
}
