// Package model holds the text content shown by a controller: a grid of
// runes, a cursor addressed in (column, row) rune coordinates and the
// cursor's shape.
package model

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"termview/region"
)

type Shape int

const (
	Block Shape = iota
	Bar
	Underscore
)

func (s Shape) String() string {
	switch s {
	case Block:
		return "block"
	case Bar:
		return "bar"
	case Underscore:
		return "underscore"
	}
	return "unknown"
}

// ParseShape maps a config value to a shape, defaulting to Block.
func ParseShape(name string) Shape {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bar":
		return Bar
	case "underscore":
		return Underscore
	}
	return Block
}

type Cursor struct {
	col, row int
}

type Model struct {
	rows   [][]rune
	cursor Cursor
	shape  Shape
	// shape restored when leaving underscore
	primary Shape
}

func New(text string) *Model {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}
	return &Model{rows: rows, shape: Block, primary: Block}
}

func (m *Model) Content() [][]rune {
	return m.rows
}

// ContentRegion spans every row and one column past the longest row, so a
// cursor at the end of any row lies inside it.
func (m *Model) ContentRegion() region.Region {
	width := 0
	for _, row := range m.rows {
		width = max(width, len(row))
	}
	return region.New(0, 0, width+1, len(m.rows))
}

func (m *Model) CursorPosition() (col, row int) {
	return m.cursor.col, m.cursor.row
}

// SetCursor places the cursor, clamping to the content.
func (m *Model) SetCursor(col, row int) {
	row = min(max(row, 0), len(m.rows)-1)
	col = min(max(col, 0), len(m.rows[row]))
	m.cursor = Cursor{col: col, row: row}
}

// Directional moves change one coordinate by exactly one unit. Horizontal
// moves stop at the ends of the row; vertical moves keep the column even
// past the end of a shorter row.

func (m *Model) MoveLeft() bool {
	if m.cursor.col == 0 {
		return false
	}
	m.cursor.col--
	return true
}

func (m *Model) MoveRight() bool {
	if m.cursor.col >= len(m.rows[m.cursor.row]) {
		return false
	}
	m.cursor.col++
	return true
}

func (m *Model) MoveUp() bool {
	if m.cursor.row == 0 {
		return false
	}
	m.cursor.row--
	return true
}

func (m *Model) MoveDown() bool {
	if m.cursor.row >= len(m.rows)-1 {
		return false
	}
	m.cursor.row++
	return true
}

// MoveCellStart moves to the first rune of the cell under the cursor.
func (m *Model) MoveCellStart() bool {
	start, _, ok := m.cellAt(m.cursor.col)
	if !ok {
		return false
	}
	return m.moveInRow(start)
}

// MoveCellEnd moves to the last rune of the cell under the cursor.
func (m *Model) MoveCellEnd() bool {
	_, end, ok := m.cellAt(m.cursor.col)
	if !ok {
		return false
	}
	return m.moveInRow(end - 1)
}

// MoveCellNext moves to the start of the following cell, or to the end of
// the row after the last one.
func (m *Model) MoveCellNext() bool {
	_, end, ok := m.cellAt(m.cursor.col)
	if !ok {
		return false
	}
	return m.moveInRow(end)
}

// MoveCellPrev moves to the start of the cell before the one under the
// cursor.
func (m *Model) MoveCellPrev() bool {
	col := m.cursor.col
	if col == 0 {
		return false
	}
	start := min(col, len(m.rows[m.cursor.row]))
	if s, _, ok := m.cellAt(start); ok {
		start = s
	}
	if start == 0 {
		return false
	}
	prev, _, _ := m.cellAt(start - 1)
	return m.moveInRow(prev)
}

func (m *Model) MoveRowStart() bool {
	return m.moveInRow(0)
}

func (m *Model) MoveRowEnd() bool {
	return m.moveInRow(len(m.rows[m.cursor.row]))
}

func (m *Model) moveInRow(col int) bool {
	if col == m.cursor.col {
		return false
	}
	m.cursor.col = col
	return true
}

// cellAt returns the rune span [start, end) of the grapheme cluster that
// contains col in the cursor's row. ok is false at the end of the row.
func (m *Model) cellAt(col int) (start, end int, ok bool) {
	row := m.rows[m.cursor.row]
	if col >= len(row) {
		return col, col, false
	}
	g := uniseg.NewGraphemes(string(row))
	for g.Next() {
		end = start + len(g.Runes())
		if col < end {
			return start, end, true
		}
		start = end
	}
	return col, col, false
}

// Toggle switches between the bar/block shape and underscore.
func (m *Model) Toggle() {
	if m.shape == Underscore {
		m.shape = m.primary
		return
	}
	m.primary = m.shape
	m.shape = Underscore
}

func (m *Model) ToggleBarBlock() {
	if m.shape == Block {
		m.shape = Bar
	} else {
		m.shape = Block
	}
	m.primary = m.shape
}

// SetShape sets the cursor shape directly.
func (m *Model) SetShape(s Shape) {
	m.shape = s
	if s != Underscore {
		m.primary = s
	}
}

func (m *Model) Shape() Shape { return m.shape }

func (m *Model) IsBar() bool        { return m.shape == Bar }
func (m *Model) IsBlock() bool      { return m.shape == Block }
func (m *Model) IsUnderscore() bool { return m.shape == Underscore }

// CursorChar returns the rune under the cursor; ok is false at the end of
// the row.
func (m *Model) CursorChar() (r rune, ok bool) {
	row := m.rows[m.cursor.row]
	if m.cursor.col >= len(row) {
		return 0, false
	}
	return row[m.cursor.col], true
}

// DisplayColumn converts a rune column of row into a screen column.
func (m *Model) DisplayColumn(col, row int) int {
	if row < 0 || row >= len(m.rows) {
		return col
	}
	runes := m.rows[row]
	width := 0
	for i := 0; i < col; i++ {
		if i >= len(runes) {
			width += col - i
			break
		}
		width += CellWidth(runes[i], width)
	}
	return width
}

const TabWidth = 8

// CellWidth returns the screen cells r takes when it starts at screen column
// x. Tabs run to the next tab stop and other control runes take one cell.
func CellWidth(r rune, x int) int {
	switch {
	case r == '\t':
		return TabWidth - x%TabWidth
	case unicode.IsControl(r):
		return 1
	}
	return runewidth.RuneWidth(r)
}
