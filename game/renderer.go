package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cicmen35/CL-Minesweeper/models"
)

type Renderer struct {
	root       *tview.Flex
	boardTable *tview.Table
	statusText *tview.TextView
}

func NewRenderer() *Renderer {
	boardTable := tview.NewTable()
	statusText := tview.NewTextView()
	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(boardTable, 0, 1, true).
		AddItem(statusText, 1, 0, false)

	return &Renderer{
		root:       root,
		boardTable: boardTable,
		statusText: statusText,
	}
}

// Root returns the widget the application mounts.
func (r *Renderer) Root() tview.Primitive {
	return r.root
}

// DrawBoard redraws every cell from the grid's current display symbols.
func (r *Renderer) DrawBoard(grid *models.Grid) {
	for row, symbols := range grid.Render() {
		for col, symbol := range symbols {
			cell := tview.NewTableCell(symbol).SetAlign(tview.AlignCenter)
			if symbol == models.Mine {
				cell.SetTextColor(tcell.ColorRed)
			}
			r.boardTable.SetCell(row, col, cell)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(grid.Height, grid.Width)
}

// MarkHint highlights the suggested cell and moves the selection onto it.
func (r *Renderer) MarkHint(c models.Coordinate) {
	r.boardTable.GetCell(c.Row, c.Col).SetBackgroundColor(tcell.ColorYellow)
	r.boardTable.Select(c.Row, c.Col)
	r.SetStatus(fmt.Sprintf("Hint: try opening the cell at (%d, %d)", c.Row, c.Col))
}

func (r *Renderer) SetStatus(text string) {
	r.statusText.SetText(text)
}
