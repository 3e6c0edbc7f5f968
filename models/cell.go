package models

import "strconv"

// Mine is the symbol shown for an opened mine cell. The game layer only
// reaches it after a losing guess.
const Mine = "M"

// Unopened is the symbol shown for a cell that has not been opened yet.
const Unopened = " "

type Cell struct {
	HasMine       bool
	AdjacentMines int
	IsOpen        bool
}

// Open marks the cell as opened. Opening an already open cell changes
// nothing; a cell never closes again.
func (c *Cell) Open() {
	c.IsOpen = true
}

// UnopenedNonMine reports whether the cell is still a safe target: not
// opened and not holding a mine.
func (c *Cell) UnopenedNonMine() bool {
	return !c.IsOpen && !c.HasMine
}

// Render returns the cell's display symbol: a blank for an unopened cell,
// the adjacent mine count ("0"-"8") for an opened non-mine cell, and the
// mine marker for an opened mine.
func (c *Cell) Render() string {
	if !c.IsOpen {
		return Unopened
	}
	if c.HasMine {
		return Mine
	}
	return strconv.Itoa(c.AdjacentMines)
}
