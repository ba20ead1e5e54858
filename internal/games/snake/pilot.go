package snake

import (
	"math/rand"

	"github.com/alcherk/snake-arena/internal/core"
)

// View is what a pilot sees when choosing the next heading.
type View struct {
	Board   core.Rect
	Self    []core.Point   // Own body, head first
	Heading core.Direction // Currently queued heading
	Food    []core.Point
	Rival   []core.Point // The other snake, head first
}

// Pilot decides a snake's next heading.
type Pilot interface {
	Decide(v View) core.Direction
}

// ManualPilot keeps whatever heading was supplied from outside (keyboard input).
type ManualPilot struct{}

// Decide returns the queued heading unchanged.
func (ManualPilot) Decide(v View) core.Direction {
	return v.Heading
}

// PriorityPilot prefers the heading that closes the larger axis gap to the
// nearest food, falls back to a random safe heading, and when boxed in takes
// the escape heading with the longest straight run of open cells.
type PriorityPilot struct {
	rng *rand.Rand
}

// NewPriorityPilot creates a priority pilot drawing random fallbacks from rng.
func NewPriorityPilot(rng *rand.Rand) *PriorityPilot {
	return &PriorityPilot{rng: rng}
}

// Decide implements Pilot.
func (p *PriorityPilot) Decide(v View) core.Direction {
	head := v.Self[0]

	preferred := v.Heading
	if food, ok := NearestFood(head, v.Food); ok {
		preferred, _ = axisHeadings(head, food)
	}

	safe := v.safeHeadings(true)
	if len(safe) > 0 {
		if containsDir(safe, preferred) {
			return preferred
		}
		return safe[p.rng.Intn(len(safe))]
	}

	// Nothing is strictly safe. The rival's head is not deadly, so it is
	// allowed as an escape.
	escape := v.safeHeadings(false)
	if len(escape) > 0 {
		return v.mostOpen(escape)
	}
	return v.Heading
}

// GreedyPilot tries the axis toward the nearest food, then the other axis
// toward it, then the first safe heading in enumeration order.
type GreedyPilot struct{}

// Decide implements Pilot.
func (GreedyPilot) Decide(v View) core.Direction {
	head := v.Self[0]

	if food, ok := NearestFood(head, v.Food); ok {
		primary, secondary := axisHeadings(head, food)
		if v.safe(primary) {
			return primary
		}
		if secondary != primary && v.safe(secondary) {
			return secondary
		}
	} else if v.safe(v.Heading) {
		return v.Heading
	}

	for _, d := range core.Directions() {
		if v.safe(d) {
			return d
		}
	}
	return v.Heading
}

// NearestFood returns the food closest to head by Manhattan distance.
// Ties go to the first one found.
func NearestFood(head core.Point, food []core.Point) (core.Point, bool) {
	if len(food) == 0 {
		return core.Point{}, false
	}
	best := food[0]
	bestDist := core.Manhattan(head, best)
	for _, f := range food[1:] {
		if d := core.Manhattan(head, f); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, true
}

// axisHeadings returns the heading along the axis with the larger gap to
// target (vertical on ties) and the heading along the other axis. When the
// other axis has no gap, secondary equals primary.
func axisHeadings(head, target core.Point) (primary, secondary core.Direction) {
	dx := target.X - head.X
	dy := target.Y - head.Y

	horizontal := core.DirRight
	if dx < 0 {
		horizontal = core.DirLeft
	}
	vertical := core.DirDown
	if dy < 0 {
		vertical = core.DirUp
	}

	if core.Abs(dx) > core.Abs(dy) {
		if dy == 0 {
			return horizontal, horizontal
		}
		return horizontal, vertical
	}
	if dx == 0 {
		return vertical, vertical
	}
	return vertical, horizontal
}

// blocked reports whether moving onto p is deadly or forbidden: off the
// board, onto the own body behind the head, or onto the rival. With
// rivalHead unset the rival's head cell is allowed.
func (v View) blocked(p core.Point, rivalHead bool) bool {
	if !v.Board.Contains(p) {
		return true
	}
	if len(v.Self) > 1 && core.ContainsPoint(v.Self[1:], p) {
		return true
	}
	rival := v.Rival
	if !rivalHead && len(rival) > 0 {
		rival = rival[1:]
	}
	return core.ContainsPoint(rival, p)
}

// safe reports whether heading d passes the strict safety filter.
func (v View) safe(d core.Direction) bool {
	return !v.blocked(v.Self[0].Step(d), true)
}

// safeHeadings filters all headings, in enumeration order.
func (v View) safeHeadings(strict bool) []core.Direction {
	head := v.Self[0]
	var out []core.Direction
	for _, d := range core.Directions() {
		if !v.blocked(head.Step(d), strict) {
			out = append(out, d)
		}
	}
	return out
}

// openRun counts free cells straight ahead of the head in direction d.
func (v View) openRun(d core.Direction) int {
	run := 0
	p := v.Self[0].Step(d)
	for !v.blocked(p, true) {
		run++
		p = p.Step(d)
	}
	return run
}

// mostOpen returns the candidate with the longest open run; ties go to the
// first candidate.
func (v View) mostOpen(candidates []core.Direction) core.Direction {
	best := candidates[0]
	bestRun := v.openRun(best)
	for _, d := range candidates[1:] {
		if run := v.openRun(d); run > bestRun {
			best, bestRun = d, run
		}
	}
	return best
}

func containsDir(dirs []core.Direction, d core.Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}
