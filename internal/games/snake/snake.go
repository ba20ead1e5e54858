package snake

import "github.com/alcherk/snake-arena/internal/core"

// Snake is an ordered run of cells, head first, shared by the player and the
// enemy. The heading applied on the last move and the queued heading for the
// next move are tracked separately.
type Snake struct {
	body     []core.Point
	heading  core.Direction // Applied on the last move
	next     core.Direction // Queued, applied at the start of the next move
	lastTail core.Point     // Cell dropped by the last non-growing move
	dropped  bool           // Whether lastTail is valid
}

// NewSnake creates a snake of the given length with its head at head and the
// rest of the body trailing straight behind it.
func NewSnake(head core.Point, heading core.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite()
	body := make([]core.Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Step(back)
	}
	return &Snake{
		body:    body,
		heading: heading,
		next:    heading,
	}
}

// SetHeading queues d for the next move unless it is the exact opposite of
// the current heading, in which case the call is a no-op.
func (s *Snake) SetHeading(d core.Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.next = d
}

// Steer queues d unconditionally. Used for the enemy, whose heading has
// already been through the safety filter.
func (s *Snake) Steer(d core.Direction) {
	s.next = d
}

// NextHead returns where the head would be after the next move.
func (s *Snake) NextHead() core.Point {
	return s.body[0].Step(s.next)
}

// Advance applies the queued heading and moves the head one cell. The tail
// cell is removed unless grow is set. No bounds or collision checks are made.
func (s *Snake) Advance(grow bool) {
	s.heading = s.next
	newHead := s.body[0].Step(s.heading)

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	s.dropped = false
	if !grow {
		s.lastTail = s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		s.dropped = true
	}
}

// Grow turns the last non-growing move into a growing one by putting the
// dropped tail cell back. It reports false if there is nothing to restore.
func (s *Snake) Grow() bool {
	if !s.dropped {
		return false
	}
	s.body = append(s.body, s.lastTail)
	s.dropped = false
	return true
}

// CollidesAt reports whether p lies on the body, excluding the head.
func (s *Snake) CollidesAt(p core.Point) bool {
	return core.ContainsPoint(s.body[1:], p)
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns the body, head first. Callers must not modify it.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the heading applied on the last move.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// NextHeading returns the queued heading.
func (s *Snake) NextHeading() core.Direction {
	return s.next
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}
