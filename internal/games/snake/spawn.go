package snake

import (
	"math"
	"math/rand"

	"github.com/alcherk/snake-arena/internal/core"
)

// SpawnOptions bounds the search for an enemy spawn cell.
type SpawnOptions struct {
	MinDistance     int // Required distance from every player segment
	CenterDistance  int // Required distance from the board center
	Attempts        int
	FallbackSamples int
	Length          int // Enemy length, used to keep the trailing body on the board
}

// SpawnEnemy picks a head cell and heading for a new enemy. Cells are
// sampled from the outer third of the board. A cell far enough from the
// player and from the center is taken at once; otherwise the best of a
// small sample by distance to the nearest player segment is used.
func SpawnEnemy(board core.Rect, player []core.Point, opts SpawnOptions, rng *rand.Rand) (core.Point, core.Direction) {
	center := board.Center()

	for i := 0; i < opts.Attempts; i++ {
		p := sampleBand(board, rng)
		if core.ContainsPoint(player, p) {
			continue
		}
		if minDistance(p, player) >= opts.MinDistance && core.Manhattan(p, center) >= opts.CenterDistance {
			return p, spawnHeading(board, p, opts.Length, rng)
		}
	}

	best := sampleBand(board, rng)
	bestDist := minDistance(best, player)
	for i := 1; i < opts.FallbackSamples; i++ {
		p := sampleBand(board, rng)
		if d := minDistance(p, player); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best, spawnHeading(board, best, opts.Length, rng)
}

// sampleBand returns a random cell in the outer third of a random side.
func sampleBand(board core.Rect, rng *rand.Rand) core.Point {
	bandW := core.Max(1, board.W/3)
	bandH := core.Max(1, board.H/3)

	x := board.X + rng.Intn(board.W)
	y := board.Y + rng.Intn(board.H)
	switch rng.Intn(4) {
	case 0: // top
		y = board.Y + rng.Intn(bandH)
	case 1: // bottom
		y = board.Bottom() - 1 - rng.Intn(bandH)
	case 2: // left
		x = board.X + rng.Intn(bandW)
	default: // right
		x = board.Right() - 1 - rng.Intn(bandW)
	}
	return core.Pt(x, y)
}

// minDistance is the Manhattan distance from p to the closest cell.
func minDistance(p core.Point, cells []core.Point) int {
	if len(cells) == 0 {
		return math.MaxInt
	}
	best := math.MaxInt
	for _, c := range cells {
		if d := core.Manhattan(p, c); d < best {
			best = d
		}
	}
	return best
}

// spawnHeading picks a random heading whose trailing body fits on the board.
func spawnHeading(board core.Rect, head core.Point, length int, rng *rand.Rand) core.Direction {
	var fits []core.Direction
	for _, d := range core.Directions() {
		tail := head
		for i := 1; i < length; i++ {
			tail = tail.Step(d.Opposite())
		}
		if board.Contains(tail) {
			fits = append(fits, d)
		}
	}
	if len(fits) == 0 {
		return core.Directions()[rng.Intn(4)]
	}
	return fits[rng.Intn(len(fits))]
}
