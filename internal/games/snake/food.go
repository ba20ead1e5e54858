package snake

import (
	"math/rand"
	"time"

	"github.com/alcherk/snake-arena/internal/core"
)

// FoodPolicy selects how eaten food is replaced.
type FoodPolicy int

const (
	// FoodFixed keeps a fixed number of pellets and replaces eaten ones at once.
	FoodFixed FoodPolicy = iota
	// FoodDelayed keeps a random number of pellets in [MinCount, MaxCount]
	// and replaces each eaten one after a random delay.
	FoodDelayed
)

// FoodOptions configures a FoodSet.
type FoodOptions struct {
	Policy   FoodPolicy
	Count    int // FoodFixed target
	MinCount int // FoodDelayed range
	MaxCount int
	DelayMin time.Duration
	DelayMax time.Duration
	Attempts int // Placement samples before giving up
}

// FoodSet is the collection of pellets on the board. Positions are unique.
type FoodSet struct {
	board  core.Rect
	opts   FoodOptions
	rng    *rand.Rand
	sched  *Scheduler
	items  []core.Point
	target int
}

// NewFoodSet creates a food set and fills it to its target, avoiding occupied.
func NewFoodSet(board core.Rect, opts FoodOptions, rng *rand.Rand, sched *Scheduler, occupied []core.Point) *FoodSet {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	f := &FoodSet{
		board: board,
		opts:  opts,
		rng:   rng,
		sched: sched,
	}

	f.target = opts.Count
	if opts.Policy == FoodDelayed {
		f.target = opts.MinCount
		if span := opts.MaxCount - opts.MinCount; span > 0 {
			f.target += rng.Intn(span + 1)
		}
	}

	for len(f.items) < f.target {
		if !f.Place(occupied) {
			break
		}
	}
	return f
}

// Positions returns the pellets. Callers must not modify the slice.
func (f *FoodSet) Positions() []core.Point {
	return f.items
}

// Len returns the number of pellets on the board.
func (f *FoodSet) Len() int {
	return len(f.items)
}

// Target returns the number of pellets the set aims to hold.
func (f *FoodSet) Target() int {
	return f.target
}

// Contains reports whether p holds a pellet.
func (f *FoodSet) Contains(p core.Point) bool {
	return core.ContainsPoint(f.items, p)
}

// Place puts one pellet on a random free cell. It gives up after the
// configured number of samples and reports whether a pellet was placed.
func (f *FoodSet) Place(occupied []core.Point) bool {
	if f.board.Area() <= 0 {
		return false
	}
	for i := 0; i < f.opts.Attempts; i++ {
		p := core.Pt(
			f.board.X+f.rng.Intn(f.board.W),
			f.board.Y+f.rng.Intn(f.board.H),
		)
		if core.ContainsPoint(occupied, p) || f.Contains(p) {
			continue
		}
		f.items = append(f.items, p)
		return true
	}
	return false
}

// Refill removes pellets covered by occupied and replaces them according to
// the policy, then tops the set up to its minimum count.
func (f *FoodSet) Refill(occupied []core.Point) int {
	kept := f.items[:0]
	removed := 0
	for _, p := range f.items {
		if core.ContainsPoint(occupied, p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	f.items = kept

	for i := 0; i < removed; i++ {
		f.replace(occupied)
	}

	minimum := f.opts.Count
	if f.opts.Policy == FoodDelayed {
		minimum = f.opts.MinCount
	}
	for len(f.items) < minimum {
		if !f.Place(occupied) {
			break
		}
	}
	return removed
}

func (f *FoodSet) replace(occupied []core.Point) {
	if f.opts.Policy != FoodDelayed || f.sched == nil {
		f.Place(occupied)
		return
	}

	snapshot := append([]core.Point(nil), occupied...)
	f.sched.Schedule(f.delay(), func() {
		if len(f.items) < f.target {
			f.Place(snapshot)
		}
	})
}

func (f *FoodSet) delay() time.Duration {
	d := f.opts.DelayMin
	if span := f.opts.DelayMax - f.opts.DelayMin; span > 0 {
		d += time.Duration(f.rng.Int63n(int64(span) + 1))
	}
	return d
}
