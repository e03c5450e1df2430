package snake

// Snake is an ordered list of occupied cells (head first) plus a heading and
// a pending-growth flag.
type Snake struct {
	board     Board
	segments  []Position
	direction Direction
	growing   bool
}

// NewSnake spawns a three-segment snake with its head on the board center,
// facing right, body trailing to the left.
func NewSnake(board Board) *Snake {
	head := board.Center()
	return &Snake{
		board: board,
		segments: []Position{
			head,
			{X: head.X - board.CellSize, Y: head.Y},
			{X: head.X - 2*board.CellSize, Y: head.Y},
		},
		direction: Right,
	}
}

// Move advances the head by one cell. The tail is dropped unless a grow is
// pending, in which case the flag is consumed and the snake gets one longer.
// No bounds checking: the head may leave the board for one tick.
func (s *Snake) Move() {
	newHead := s.Head().Offset(s.direction, s.board.CellSize)

	s.segments = append(s.segments, Position{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.segments = s.segments[:len(s.segments)-1]
}

// Grow makes the next Move keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// ChangeDirection sets the heading unless d reverses it.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// CheckCollision reports whether the head overlaps the body or lies off the board.
func (s *Snake) CheckCollision() bool {
	head := s.Head()
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return !s.board.Contains(head)
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Position {
	return append([]Position(nil), s.segments...)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Growing reports whether a grow is pending for the next move.
func (s *Snake) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}
