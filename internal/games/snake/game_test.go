package snake

import (
	"math/rand"
	"testing"
)

func newTestGame(winScore int) *Game {
	return NewGame(Options{
		Board:    testBoard,
		WinScore: winScore,
		Rand:     rand.New(rand.NewSource(42)),
	})
}

func TestNewGameIsPaused(t *testing.T) {
	g := newTestGame(20)

	if g.State() != StatePaused {
		t.Errorf("State() = %v, expected PAUSED", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("snake length = %d, expected 3", g.Snake().Len())
	}
	if g.Snake().Occupies(g.Dot().Position()) {
		t.Error("dot placed on the snake")
	}

	head := g.Snake().Head()
	if ev := g.Update(); ev != EventNone {
		t.Errorf("Update() while paused = %v, expected none", ev)
	}
	if g.Snake().Head() != head {
		t.Error("Update() moved the snake while paused")
	}
}

func TestNewGameWithoutRand(t *testing.T) {
	g := NewGame(Options{Board: testBoard, WinScore: 5})
	g.Start()

	dot := g.Dot().Position()
	if !testBoard.Contains(dot) || g.Snake().Occupies(dot) {
		t.Errorf("dot = %+v, expected a free cell on the board", dot)
	}
	if ev := g.Update(); ev == EventNone {
		t.Errorf("Update() = %v, expected the snake to move", ev)
	}
}

func TestStart(t *testing.T) {
	g := newTestGame(20)
	g.Start()

	if g.State() != StateRunning {
		t.Fatalf("State() = %v, expected RUNNING", g.State())
	}
	if g.Score() != 0 || g.Snake().Len() != 3 {
		t.Errorf("Score()/Len() = %d/%d, expected 0/3", g.Score(), g.Snake().Len())
	}
	if g.Snake().Head() != testBoard.Center() {
		t.Errorf("Head() = %v, expected board center %v", g.Snake().Head(), testBoard.Center())
	}
	if g.Snake().Occupies(g.Dot().Position()) {
		t.Error("dot placed on the snake")
	}
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(20)
	g.Start()

	g.TogglePause()
	if g.State() != StatePaused {
		t.Fatalf("State() = %v, expected PAUSED", g.State())
	}
	g.ChangeDirection(Up)
	if g.Snake().Direction() != Right {
		t.Error("ChangeDirection() should be ignored while paused")
	}

	g.TogglePause()
	if g.State() != StateRunning {
		t.Fatalf("State() = %v, expected RUNNING", g.State())
	}
	g.ChangeDirection(Up)
	if g.Snake().Direction() != Up {
		t.Error("ChangeDirection() should apply while running")
	}
}

func TestUpdateMoves(t *testing.T) {
	g := newTestGame(20)
	g.Start()
	g.Dot().Place(Position{0, 0})

	if ev := g.Update(); ev != EventMoved {
		t.Fatalf("Update() = %v, expected moved", ev)
	}
	if g.Snake().Head() != (Position{60, 40}) {
		t.Errorf("Head() = %v, expected (60,40)", g.Snake().Head())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestEatGrowsOnNextTick(t *testing.T) {
	g := newTestGame(20)
	g.Start()
	g.Dot().Place(Position{60, 40})

	if ev := g.Update(); ev != EventAte {
		t.Fatalf("Update() = %v, expected ate", ev)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("length right after eating = %d, expected 3", g.Snake().Len())
	}
	if !g.Snake().Growing() {
		t.Error("snake should be growing after eating")
	}
	if g.Snake().Occupies(g.Dot().Position()) {
		t.Error("dot repositioned onto the snake")
	}

	// Keep the dot out of the way for the next tick.
	g.Dot().Place(Position{0, 80})
	g.Update()

	if g.Snake().Head() != (Position{80, 40}) {
		t.Errorf("Head() = %v, expected (80,40)", g.Snake().Head())
	}
	if g.Snake().Len() != 4 {
		t.Errorf("length one tick after eating = %d, expected 4", g.Snake().Len())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(20)
	g.Start()
	g.Snake().segments[0] = Position{-20, 0}
	g.Snake().direction = Left
	g.Dot().Place(Position{80, 80})

	if ev := g.Update(); ev != EventCollided {
		t.Fatalf("Update() = %v, expected collided", ev)
	}
	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, expected GAME_OVER", g.State())
	}

	head := g.Snake().Head()
	if ev := g.Update(); ev != EventNone {
		t.Errorf("Update() after game over = %v, expected none", ev)
	}
	if g.Snake().Head() != head {
		t.Error("snake moved after game over")
	}

	g.TogglePause()
	if g.State() != StateGameOver {
		t.Errorf("TogglePause() changed terminal state to %v", g.State())
	}
}

func TestCollisionSkipsDotCheck(t *testing.T) {
	g := newTestGame(20)
	g.Start()
	g.Snake().segments[0] = Position{80, 40}
	// The dot sits off the board exactly where the head will land.
	g.Dot().Place(Position{100, 40})

	if ev := g.Update(); ev != EventCollided {
		t.Fatalf("Update() = %v, expected collided", ev)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, collision must not score", g.Score())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(20)
	g.Start()
	g.Snake().segments = []Position{{40, 40}, {60, 40}, {60, 20}, {40, 20}, {20, 20}}
	g.Snake().direction = Up
	g.Dot().Place(Position{80, 80})

	if ev := g.Update(); ev != EventCollided {
		t.Fatalf("Update() = %v, expected collided", ev)
	}
	if g.State() != StateGameOver {
		t.Errorf("State() = %v, expected GAME_OVER", g.State())
	}
}

func TestWin(t *testing.T) {
	g := newTestGame(1)
	g.Start()
	g.Dot().Place(Position{60, 40})

	if ev := g.Update(); ev != EventWon {
		t.Fatalf("Update() = %v, expected won", ev)
	}
	if g.State() != StateWon {
		t.Fatalf("State() = %v, expected WON", g.State())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}

	g.ChangeDirection(Up)
	if g.Snake().Direction() != Right {
		t.Error("ChangeDirection() should be ignored after winning")
	}
	if ev := g.Update(); ev != EventNone {
		t.Errorf("Update() after winning = %v, expected none", ev)
	}
}

func TestStartFromTerminalStates(t *testing.T) {
	for _, end := range []State{StateGameOver, StateWon} {
		t.Run(end.String(), func(t *testing.T) {
			g := newTestGame(20)
			g.Start()
			g.score = 7
			g.state = end

			g.Start()
			if g.State() != StateRunning {
				t.Errorf("State() = %v, expected RUNNING", g.State())
			}
			if g.Score() != 0 || g.Snake().Len() != 3 {
				t.Errorf("Score()/Len() = %d/%d, expected 0/3", g.Score(), g.Snake().Len())
			}
		})
	}
}

func TestScoreMatchesGrowth(t *testing.T) {
	g := newTestGame(100)
	g.Start()

	// Walk the snake along row 40 eating a dot placed in front of it.
	for i := range 2 {
		head := g.Snake().Head()
		g.Dot().Place(head.Offset(Right, testBoard.CellSize))
		if ev := g.Update(); ev != EventAte {
			t.Fatalf("tick %d: Update() = %v, expected ate", i, ev)
		}
	}
	g.Dot().Place(Position{0, 0})
	g.ChangeDirection(Down)
	g.Update()

	if g.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", g.Score())
	}
	if g.Snake().Len() != 3+g.Score() {
		t.Errorf("length = %d, expected %d", g.Snake().Len(), 3+g.Score())
	}
}

func TestSegmentsStayAdjacent(t *testing.T) {
	g := NewGame(Options{
		Board:    Board{Width: 600, Height: 400, CellSize: 20},
		WinScore: 20,
		Rand:     rand.New(rand.NewSource(3)),
	})
	g.Start()
	turns := []Direction{Down, Left, Up, Right}

	for i := range 300 {
		if g.State() != StateRunning {
			break
		}
		if i%5 == 0 {
			g.ChangeDirection(turns[(i/5)%len(turns)])
		}
		g.Update()

		segs := g.Snake().Segments()
		for j := 1; j < len(segs); j++ {
			dx := abs(segs[j].X - segs[j-1].X)
			dy := abs(segs[j].Y - segs[j-1].Y)
			if dx+dy != 20 {
				t.Fatalf("tick %d: segments %d and %d are not adjacent: %v %v", i, j-1, j, segs[j-1], segs[j])
			}
		}
		if g.State() == StateRunning && g.Snake().Occupies(g.Dot().Position()) {
			t.Fatalf("tick %d: dot on the snake at %v", i, g.Dot().Position())
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
