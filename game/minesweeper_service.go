package game

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/cicmen35/CL-Minesweeper/models"
)

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// MinesweeperService drives one interactive session: it owns the grid, the
// renderer and the tview application, and turns key events into grid
// operations.
type MinesweeperService struct {
	grid     *models.Grid
	renderer *Renderer
	app      *tview.Application
	log      zerolog.Logger
	outcome  Outcome
}

func NewMinesweeperService(logger zerolog.Logger) *MinesweeperService {
	return &MinesweeperService{
		renderer: NewRenderer(),
		log:      logger,
	}
}

// InitGame builds the board, wires the input handlers and runs the UI
// until the game is decided or the player quits.
func (s *MinesweeperService) InitGame(width, height int, difficulty models.Difficulty) error {
	grid, err := models.NewGrid(width, height, difficulty)
	if err != nil {
		return err
	}
	s.grid = grid
	s.outcome = Playing

	s.log.Info().
		Int("width", width).
		Int("height", height).
		Stringer("difficulty", difficulty).
		Int("mines", grid.MineCount()).
		Msg("game started")

	s.renderer.DrawBoard(s.grid)
	s.renderer.SetStatus("Enter: open cell  h: hint  q: quit")

	s.app = tview.NewApplication()
	s.app.SetRoot(s.renderer.Root(), true)
	s.handleInput()

	if err := s.app.Run(); err != nil {
		return err
	}

	switch s.outcome {
	case Won:
		fmt.Println("Congratulations, you won!")
	case Lost:
		fmt.Println("Game Over! You hit a mine.")
	default:
		fmt.Println("Quitting...")
	}
	return nil
}

// Outcome reports how the last session ended.
func (s *MinesweeperService) Outcome() Outcome {
	return s.outcome
}

func (s *MinesweeperService) handleInput() {
	s.renderer.boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if s.outcome != Playing {
			return event
		}

		row, col := s.renderer.boardTable.GetSelection()
		coordinate := models.Coordinate{Row: row, Col: col}

		switch event.Key() {
		case tcell.KeyEnter:
			s.openCell(coordinate)

		case tcell.KeyRune:
			switch event.Rune() {
			case 'h', 'H':
				s.requestHint()
			case 'q', 'Q':
				s.app.Stop()
			}
		}

		return event
	})
}

// openCell reveals one cell and settles the game if that guess decided it.
func (s *MinesweeperService) openCell(c models.Coordinate) {
	if err := s.grid.Reveal(c); err != nil {
		// The table selection cannot leave the board, so this only
		// fires if the handler is given a bad coordinate.
		s.log.Warn().Err(err).Msg("reveal rejected")
		return
	}

	mined, err := s.grid.HasMine(c)
	if err != nil {
		s.log.Warn().Err(err).Msg("mine check rejected")
		return
	}

	s.renderer.DrawBoard(s.grid)
	s.log.Debug().Int("row", c.Row).Int("col", c.Col).Bool("mine", mined).Msg("cell opened")

	if mined {
		s.outcome = Lost
		s.log.Info().Msg("player hit a mine")
		s.app.Stop()
		return
	}

	if !s.grid.HasUnopenedNonMines() {
		s.outcome = Won
		s.log.Info().Msg("player cleared the board")
		s.app.Stop()
	}
}

func (s *MinesweeperService) requestHint() {
	hint, err := s.grid.Hint()
	if errors.Is(err, models.ErrNoSafeCellAvailable) {
		s.renderer.SetStatus("No safe cells available for a hint!")
		s.log.Debug().Msg("hint requested with no safe cells left")
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("hint failed")
		return
	}

	s.renderer.MarkHint(hint)
	s.log.Debug().Int("row", hint.Row).Int("col", hint.Col).Msg("hint issued")
}
