package snake

import "errors"

// ErrBoardFull is returned by Dot.Reposition when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell for the dot")

// Rand is the random source used for dot placement.
// *math/rand.Rand satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Intn(n int) int
}

// Dot is the single food item.
type Dot struct {
	board    Board
	rng      Rand
	position Position
}

// NewDot creates a dot at a random grid-aligned cell.
func NewDot(board Board, rng Rand) *Dot {
	d := &Dot{board: board, rng: rng}
	d.position = d.RandomPosition()
	return d
}

// Position returns the dot's cell.
func (d *Dot) Position() Position {
	return d.position
}

// Place forces the dot onto p.
func (d *Dot) Place(p Position) {
	d.position = p
}

// RandomPosition samples a cell uniformly over the board.
func (d *Dot) RandomPosition() Position {
	return Position{
		X: d.rng.Intn(d.board.Cols()) * d.board.CellSize,
		Y: d.rng.Intn(d.board.Rows()) * d.board.CellSize,
	}
}

// Reposition moves the dot to a random cell not listed in occupied.
//
// It rejection-samples first. After maxRejections misses (a crowded board)
// it picks uniformly from the free cells instead, so the call always
// terminates. If no free cell exists the dot stays put and ErrBoardFull is
// returned.
func (d *Dot) Reposition(occupied []Position) error {
	taken := make(map[Position]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for range d.maxRejections() {
		p := d.RandomPosition()
		if _, ok := taken[p]; !ok {
			d.position = p
			return nil
		}
	}

	free := make([]Position, 0, d.board.Cells())
	for row := range d.board.Rows() {
		for col := range d.board.Cols() {
			p := Position{X: col * d.board.CellSize, Y: row * d.board.CellSize}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	d.position = free[d.rng.Intn(len(free))]
	return nil
}

func (d *Dot) maxRejections() int {
	return 4 * d.board.Cells()
}
