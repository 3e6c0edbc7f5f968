package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cicmen35/CL-Minesweeper/models"
)

func testGrid(t *testing.T, width, height int, difficulty models.Difficulty, seed int64) *models.Grid {
	t.Helper()
	g, err := models.NewGridWithRand(width, height, difficulty, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Expected grid, got error: %v", err)
	}
	return g
}

func TestRenderer_DrawBoard(t *testing.T) {
	grid := testGrid(t, 4, 3, models.Medium, 21)
	renderer := NewRenderer()
	renderer.DrawBoard(grid)

	for row, symbols := range grid.Render() {
		for col, symbol := range symbols {
			if got := renderer.boardTable.GetCell(row, col).Text; got != symbol {
				t.Errorf("Table cell (%d, %d): expected %q, got %q", row, col, symbol, got)
			}
		}
	}
}

func TestRenderer_MarkHint(t *testing.T) {
	grid := testGrid(t, 3, 3, models.Easy, 2)
	renderer := NewRenderer()
	renderer.DrawBoard(grid)

	hint := models.Coordinate{Row: 1, Col: 2}
	renderer.MarkHint(hint)

	cell := renderer.boardTable.GetCell(hint.Row, hint.Col)
	if cell.BackgroundColor != tcell.ColorYellow {
		t.Error("Expected hinted cell to be highlighted")
	}

	row, col := renderer.boardTable.GetSelection()
	if row != hint.Row || col != hint.Col {
		t.Errorf("Expected selection on (%d, %d), got (%d, %d)", hint.Row, hint.Col, row, col)
	}

	if status := renderer.statusText.GetText(false); !strings.Contains(status, "Hint") {
		t.Errorf("Expected hint status text, got %q", status)
	}
}
