package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termview/model"
	"termview/region"
)

var (
	DefaultStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	LightStyle   = DefaultStyle.Foreground(tcell.ColorGray)
	StatusStyle  = DefaultStyle.Reverse(true)
)

func (app *Application) drawAll() {
	app.screen.Clear()
	vp := app.ctrl.Viewport()
	app.drawContent(region.New(0, 0, vp.Width(), vp.Height()))
	app.drawGutter()
	app.drawStatus()
	app.placeCursor()
}

// drawContent repaints dirty, given in viewport-relative coordinates.
func (app *Application) drawContent(dirty region.Region) {
	vp := app.ctrl.Viewport()
	dirty = dirty.Clip(region.New(0, 0, vp.Width(), vp.Height()))
	if dirty.IsEmpty() {
		return
	}
	ox, oy := app.textArea.Offset()
	fill(app.screen, dirty.Left()+ox, dirty.Top()+oy, dirty.Width(), dirty.Height(), DefaultStyle)

	content := app.ctrl.Content()
	for y := dirty.Top(); y <= dirty.Bottom(); y++ {
		row := vp.Top() + y
		if row >= len(content) {
			break
		}
		line := content[row]
		// tab stops are counted from the start of the row, not the viewport
		base := app.model.DisplayColumn(vp.Left(), row)
		x := 0
		lastX := -1
		var lastMain rune
		var combining []rune
		for col := vp.Left(); col < len(line) && x <= dirty.Right(); col++ {
			r := line[col]
			w := model.CellWidth(r, base+x)
			if w == 0 {
				if lastX >= dirty.Left() {
					combining = append(combining, r)
					app.screen.SetContent(lastX+ox, y+oy, lastMain, combining, DefaultStyle)
				}
				continue
			}
			lastX = -1
			switch {
			case x < dirty.Left() || x+w-1 > dirty.Right():
			case r == '\t':
				// already blank from the fill
			case unicode.IsControl(r):
				app.screen.SetContent(x+ox, y+oy, '?', nil, LightStyle)
			default:
				app.screen.SetContent(x+ox, y+oy, r, nil, DefaultStyle)
				lastX, lastMain, combining = x, r, nil
			}
			x += w
		}
	}
}

func (app *Application) drawGutter() {
	if app.gutterArea.IsEmpty() {
		return
	}
	vp := app.ctrl.Viewport()
	_, cursorRow := app.ctrl.CursorPosition()
	rows := len(app.ctrl.Content())
	pad := app.gutterArea.Width() - 1
	for y := 0; y < app.gutterArea.Height(); y++ {
		row := vp.Top() + y
		label, style := "", LightStyle
		if row < rows {
			label = fmt.Sprintf("%*d", pad, row+1)
		}
		if row == cursorRow {
			style = DefaultStyle
		}
		drawText(app.screen, app.gutterArea.Left(), app.gutterArea.Top()+y, app.gutterArea.Width(), style, label)
	}
}

func (app *Application) drawStatus() {
	if app.statusArea.IsEmpty() {
		return
	}
	drawText(app.screen, app.statusArea.Left(), app.statusArea.Top(), app.statusArea.Width(), StatusStyle, app.statusText())
}

func (app *Application) placeCursor() {
	if !app.ctrl.CursorInViewport() {
		app.screen.HideCursor()
		return
	}
	col, row := app.ctrl.CursorPosition()
	vp := app.ctrl.Viewport()
	// the viewport counts rune columns, so wide runes can push the cursor
	// past the text area even while it is inside the viewport
	x := app.model.DisplayColumn(col, row) - app.model.DisplayColumn(vp.Left(), row)
	if x < 0 || x >= app.textArea.Width() {
		app.screen.HideCursor()
		return
	}
	app.screen.SetCursorStyle(cursorStyle(app.model.Shape(), app.editor.CursorBlink))
	app.screen.ShowCursor(app.textArea.Left()+x, app.textArea.Top()+row-vp.Top())
}

func cursorStyle(shape model.Shape, blink bool) tcell.CursorStyle {
	switch shape {
	case model.Bar:
		if blink {
			return tcell.CursorStyleBlinkingBar
		}
		return tcell.CursorStyleSteadyBar
	case model.Underscore:
		if blink {
			return tcell.CursorStyleBlinkingUnderline
		}
		return tcell.CursorStyleSteadyUnderline
	}
	if blink {
		return tcell.CursorStyleBlinkingBlock
	}
	return tcell.CursorStyleSteadyBlock
}

// drawText writes text at (x, y), padding or cutting it to width cells.
func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += w
	}
	fill(s, x+col, y, width-col, 1, style)
}

func fill(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}
