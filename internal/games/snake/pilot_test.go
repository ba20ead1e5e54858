package snake

import (
	"math/rand"
	"testing"

	"github.com/alcherk/snake-arena/internal/core"
)

func pilots(seed int64) map[string]Pilot {
	return map[string]Pilot{
		"priority": NewPriorityPilot(rand.New(rand.NewSource(seed))),
		"greedy":   GreedyPilot{},
	}
}

// randomWalk builds a self-avoiding body of up to length cells, head first.
func randomWalk(rng *rand.Rand, board core.Rect, length int, avoid []core.Point) []core.Point {
	var start core.Point
	for i := 0; i < 50; i++ {
		start = core.Pt(rng.Intn(board.W), rng.Intn(board.H))
		if !core.ContainsPoint(avoid, start) {
			break
		}
	}
	body := []core.Point{start}
	for len(body) < length {
		tail := body[len(body)-1]
		var options []core.Point
		for _, d := range core.Directions() {
			p := tail.Step(d)
			if board.Contains(p) && !core.ContainsPoint(body, p) && !core.ContainsPoint(avoid, p) {
				options = append(options, p)
			}
		}
		if len(options) == 0 {
			break
		}
		body = append(body, options[rng.Intn(len(options))])
	}
	return body
}

func TestPilotsNeverPickUnsafeHeading(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for name, pilot := range pilots(11) {
		t.Run(name, func(t *testing.T) {
			checked := 0
			for i := 0; i < 2000; i++ {
				board := core.NewRect(0, 0, 3+rng.Intn(12), 3+rng.Intn(12))
				self := randomWalk(rng, board, 1+rng.Intn(12), nil)
				rival := randomWalk(rng, board, 1+rng.Intn(8), self)

				var food []core.Point
				for n := 1 + rng.Intn(4); n > 0; n-- {
					food = append(food, core.Pt(rng.Intn(board.W), rng.Intn(board.H)))
				}

				v := View{
					Board:   board,
					Self:    self,
					Heading: core.Directions()[rng.Intn(4)],
					Food:    food,
					Rival:   rival,
				}
				if len(v.safeHeadings(true)) == 0 {
					continue
				}
				checked++

				d := pilot.Decide(v)
				next := self[0].Step(d)
				if !board.Contains(next) {
					t.Fatalf("case %d: heading %v leaves the board from %v (%dx%d)", i, d, self[0], board.W, board.H)
				}
				if core.ContainsPoint(self[1:], next) {
					t.Fatalf("case %d: heading %v runs into own body at %v", i, d, next)
				}
				if core.ContainsPoint(rival, next) {
					t.Fatalf("case %d: heading %v runs into rival at %v", i, d, next)
				}
			}
			if checked < 500 {
				t.Errorf("Only %d cases had a safe heading", checked)
			}
		})
	}
}

func TestEnemyInCornerHeadingIntoWall(t *testing.T) {
	board := core.NewRect(0, 0, 10, 10)
	player := NewSnake(core.Pt(7, 7), core.DirRight, 5)

	for name, pilot := range pilots(3) {
		for _, length := range []int{1, 3} {
			e := NewEnemy(core.Pt(0, 0), core.DirUp, length, pilot)

			d := pilot.Decide(View{Board: board, Self: e.Body(), Heading: core.DirUp, Rival: player.Body()})
			if d == core.DirUp || d == core.DirLeft {
				t.Errorf("%s len %d: picked %v into the wall", name, length, d)
			}

			e.Advance(nil, player.Body(), board)
			if !e.Alive() {
				t.Errorf("%s len %d: enemy died moving from the corner", name, length)
			}
			if !board.Contains(e.Head()) {
				t.Errorf("%s len %d: enemy head %v off the board", name, length, e.Head())
			}
		}
	}
}

func TestPriorityPilotPrefersLargerAxis(t *testing.T) {
	board := core.NewRect(0, 0, 20, 20)
	p := NewPriorityPilot(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		food core.Point
		want core.Direction
	}{
		{"right", core.Pt(9, 6), core.DirRight},
		{"left", core.Pt(1, 4), core.DirLeft},
		{"down", core.Pt(6, 9), core.DirDown},
		{"up", core.Pt(4, 1), core.DirUp},
		{"tie goes vertical", core.Pt(8, 8), core.DirDown},
		{"same row", core.Pt(12, 5), core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := View{Board: board, Self: []core.Point{core.Pt(5, 5)}, Heading: core.DirUp, Food: []core.Point{tc.food}}
			if got := p.Decide(v); got != tc.want {
				t.Errorf("Decide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPriorityPilotFallsBackToSafeHeading(t *testing.T) {
	board := core.NewRect(0, 0, 20, 20)
	p := NewPriorityPilot(rand.New(rand.NewSource(5)))

	v := View{
		Board:   board,
		Self:    []core.Point{core.Pt(5, 5)},
		Heading: core.DirRight,
		Food:    []core.Point{core.Pt(9, 5)},
		Rival:   []core.Point{core.Pt(6, 5), core.Pt(7, 5)},
	}

	seen := make(map[core.Direction]bool)
	for i := 0; i < 50; i++ {
		d := p.Decide(v)
		if d == core.DirRight {
			t.Fatal("Picked the blocked preferred heading")
		}
		seen[d] = true
	}
	if len(seen) < 2 {
		t.Errorf("Fallback should be random among safe headings, saw %v", seen)
	}
}

func TestPriorityPilotEscapesOntoRivalHead(t *testing.T) {
	board := core.NewRect(0, 0, 5, 5)
	p := NewPriorityPilot(rand.New(rand.NewSource(1)))

	v := View{
		Board:   board,
		Self:    []core.Point{core.Pt(0, 0), core.Pt(1, 0)},
		Heading: core.DirLeft,
		Food:    []core.Point{core.Pt(4, 4)},
		Rival:   []core.Point{core.Pt(0, 1), core.Pt(0, 2), core.Pt(0, 3)},
	}
	if got := p.Decide(v); got != core.DirDown {
		t.Errorf("Decide() = %v, expected down onto the rival head", got)
	}
}

func TestPilotsKeepHeadingWhenTrapped(t *testing.T) {
	board := core.NewRect(0, 0, 5, 5)
	v := View{
		Board:   board,
		Self:    []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1), core.Pt(0, 1)},
		Heading: core.DirLeft,
		Food:    []core.Point{core.Pt(4, 4)},
	}

	for name, pilot := range pilots(9) {
		if got := pilot.Decide(v); got != core.DirLeft {
			t.Errorf("%s: Decide() = %v, expected queued heading left", name, got)
		}
	}
}

func TestGreedyPilotOrder(t *testing.T) {
	board := core.NewRect(0, 0, 20, 20)
	head := core.Pt(5, 5)
	food := []core.Point{core.Pt(8, 7)} // dx=3, dy=2

	tests := []struct {
		name  string
		rival []core.Point
		want  core.Direction
	}{
		{"primary", nil, core.DirRight},
		{"secondary", []core.Point{core.Pt(6, 5)}, core.DirDown},
		{"first safe", []core.Point{core.Pt(6, 5), core.Pt(5, 6)}, core.DirUp},
		{"skips blocked up", []core.Point{core.Pt(6, 5), core.Pt(5, 6), core.Pt(5, 4)}, core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := View{Board: board, Self: []core.Point{head}, Heading: core.DirRight, Food: food, Rival: tc.rival}
			if got := (GreedyPilot{}).Decide(v); got != tc.want {
				t.Errorf("Decide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestGreedyPilotWithoutFood(t *testing.T) {
	board := core.NewRect(0, 0, 10, 10)

	v := View{Board: board, Self: []core.Point{core.Pt(5, 5)}, Heading: core.DirLeft}
	if got := (GreedyPilot{}).Decide(v); got != core.DirLeft {
		t.Errorf("Decide() = %v, expected queued heading left", got)
	}

	v.Self = []core.Point{core.Pt(0, 5)}
	if got := (GreedyPilot{}).Decide(v); got != core.DirUp {
		t.Errorf("Decide() at left wall = %v, expected up", got)
	}
}

func TestNearestFood(t *testing.T) {
	head := core.Pt(5, 5)

	if _, ok := NearestFood(head, nil); ok {
		t.Error("Expected no food for empty set")
	}

	food := []core.Point{core.Pt(9, 9), core.Pt(5, 8), core.Pt(8, 5), core.Pt(6, 6)}
	got, ok := NearestFood(head, food)
	if !ok || got != core.Pt(6, 6) {
		t.Errorf("NearestFood() = %v, expected (6,6)", got)
	}

	// (5,8) and (8,5) tie at 3; the first one wins
	got, _ = NearestFood(head, food[:3])
	if got != core.Pt(5, 8) {
		t.Errorf("NearestFood() tie = %v, expected (5,8)", got)
	}
}

func TestManualPilotKeepsHeading(t *testing.T) {
	v := View{Board: core.NewRect(0, 0, 5, 5), Self: []core.Point{core.Pt(0, 0)}, Heading: core.DirLeft}
	if got := (ManualPilot{}).Decide(v); got != core.DirLeft {
		t.Errorf("Decide() = %v, expected left", got)
	}
}
