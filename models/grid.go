package models

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrInvalidDimensions is returned when a grid smaller than 2x2 is requested.
	ErrInvalidDimensions = errors.New("grid dimensions must be at least 2x2")
	// ErrOutOfBounds is returned for coordinates outside the grid borders.
	ErrOutOfBounds = errors.New("coordinate outside the grid")
	// ErrNoSafeCellAvailable is returned by Hint when every remaining
	// unopened cell holds a mine.
	ErrNoSafeCellAvailable = errors.New("no safe cell available")
)

// Coordinate addresses a single cell as (row, column), zero-based from the
// top-left corner.
type Coordinate struct {
	Row int
	Col int
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// MineFraction returns the proportion of the board occupied by mines for
// the difficulty level.
func (d Difficulty) MineFraction() float64 {
	switch d {
	case Medium:
		return 0.15
	case Hard:
		return 0.20
	default:
		return 0.10
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Grid is the minesweeper board: a height x width array of cells with a
// fixed mine layout decided once at construction.
type Grid struct {
	Width      int
	Height     int
	Difficulty Difficulty

	cells [][]Cell
}

// NewGrid builds a grid with mines placed from a time-seeded random source.
func NewGrid(width, height int, difficulty Difficulty) (*Grid, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewGridWithRand(width, height, difficulty, rng)
}

// NewGridWithRand builds a grid drawing mine positions from rng, so callers
// can pass a seeded source and get a reproducible layout.
func NewGridWithRand(width, height int, difficulty Difficulty, rng *rand.Rand) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
	}

	g := &Grid{
		Width:      width,
		Height:     height,
		Difficulty: difficulty,
		cells:      cells,
	}
	g.placeMines(rng)
	g.setAdjacentMineCounts()

	return g, nil
}

// MineCount returns the number of mines the difficulty puts on this board:
// round(width*height*fraction), never zero and never the whole board.
func (g *Grid) MineCount() int {
	total := g.Width * g.Height
	count := int(math.Round(float64(total) * g.Difficulty.MineFraction()))
	if count < 1 {
		count = 1
	}
	if count > total-1 {
		count = total - 1
	}
	return count
}

// placeMines draws MineCount coordinates uniformly without replacement by
// shuffling the full coordinate list (Fisher-Yates) and marking the first
// MineCount entries.
func (g *Grid) placeMines(rng *rand.Rand) {
	coords := make([]Coordinate, 0, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			coords = append(coords, Coordinate{Row: row, Col: col})
		}
	}

	for i := len(coords) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	for _, c := range coords[:g.MineCount()] {
		g.cells[c.Row][c.Col].HasMine = true
	}
}

// setAdjacentMineCounts fills in, for every non-mine cell, the number of
// mines among its up-to-8 Moore neighbors. Neighbors outside the board are
// skipped, not counted.
func (g *Grid) setAdjacentMineCounts() {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col].HasMine {
				continue
			}
			count := 0
			for deltaRow := -1; deltaRow <= 1; deltaRow++ {
				for deltaCol := -1; deltaCol <= 1; deltaCol++ {
					if deltaRow == 0 && deltaCol == 0 {
						continue
					}
					n := Coordinate{Row: row + deltaRow, Col: col + deltaCol}
					if g.valid(n) && g.cells[n.Row][n.Col].HasMine {
						count++
					}
				}
			}
			g.cells[row][col].AdjacentMines = count
		}
	}
}

func (g *Grid) valid(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

func (g *Grid) boundsErr(c Coordinate) error {
	return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, c.Row, c.Col, g.Width, g.Height)
}

// HasUnopenedNonMines reports whether any safe cell is still unopened.
// The caller's win condition is this turning false without a mine opened.
func (g *Grid) HasUnopenedNonMines() bool {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].UnopenedNonMine() {
				return true
			}
		}
	}
	return false
}

// IsOpen reports whether the cell at c has been opened.
func (g *Grid) IsOpen(c Coordinate) (bool, error) {
	if !g.valid(c) {
		return false, g.boundsErr(c)
	}
	return g.cells[c.Row][c.Col].IsOpen, nil
}

// HasMine reports whether the cell at c holds a mine.
func (g *Grid) HasMine(c Coordinate) (bool, error) {
	if !g.valid(c) {
		return false, g.boundsErr(c)
	}
	return g.cells[c.Row][c.Col].HasMine, nil
}

// Reveal opens the single cell at c. Neighboring zero-count cells are not
// opened along with it; one guess opens one cell.
func (g *Grid) Reveal(c Coordinate) error {
	if !g.valid(c) {
		return g.boundsErr(c)
	}
	g.cells[c.Row][c.Col].Open()
	return nil
}

// Render returns the board's display symbols, row by row from the top,
// each row left to right.
func (g *Grid) Render() [][]string {
	symbols := make([][]string, g.Height)
	for row := range g.cells {
		symbols[row] = make([]string, g.Width)
		for col := range g.cells[row] {
			symbols[row][col] = g.cells[row][col].Render()
		}
	}
	return symbols
}

// hintOffsets are the orthogonal directions the hint search probes, in a
// fixed order: up, down, left, right.
var hintOffsets = [4]Coordinate{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Hint returns a coordinate that is safe to open next: an unopened cell
// with no mine. It runs a depth-first backtracking search outward from the
// top-left corner, probing orthogonal neighbors the way a player would feel
// their way across the board, and falls back to a row-major scan if the
// search comes back empty.
func (g *Grid) Hint() (Coordinate, error) {
	visited := mapset.New[Coordinate]()
	if c, ok := g.searchSafeCell(Coordinate{Row: 0, Col: 0}, visited); ok {
		return c, nil
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.cells[row][col].UnopenedNonMine() {
				return Coordinate{Row: row, Col: col}, nil
			}
		}
	}
	return Coordinate{}, ErrNoSafeCellAvailable
}

// searchSafeCell recursively looks for an unopened non-mine cell starting
// at c. The visited set accumulates across the whole call, so every
// coordinate is considered at most once and the recursion is bounded by
// the board size.
func (g *Grid) searchSafeCell(c Coordinate, visited mapset.Set[Coordinate]) (Coordinate, bool) {
	if !g.valid(c) || visited.Has(c) {
		return Coordinate{}, false
	}
	visited.Put(c)

	if g.cells[c.Row][c.Col].UnopenedNonMine() {
		return c, true
	}

	for _, offset := range hintOffsets {
		next := Coordinate{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
		if found, ok := g.searchSafeCell(next, visited); ok {
			return found, true
		}
	}
	return Coordinate{}, false
}
