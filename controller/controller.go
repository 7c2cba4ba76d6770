// Package controller keeps a viewport positioned over text content as the
// cursor moves and the surface is resized.
package controller

import (
	"io"
	"log"

	"termview/model"
	"termview/region"
)

// MoveResult reports what a cursor movement did.
type MoveResult int

const (
	// NoMove: the cursor was already at a content boundary.
	NoMove MoveResult = iota
	// MovedOnly: the cursor moved, the viewport stayed; redraw the cursor.
	MovedOnly
	// MovedAndScrolled: the viewport followed the cursor; redraw everything.
	MovedAndScrolled
)

func (r MoveResult) Moved() bool    { return r != NoMove }
func (r MoveResult) Scrolled() bool { return r == MovedAndScrolled }

func (r MoveResult) String() string {
	switch r {
	case NoMove:
		return "no move"
	case MovedOnly:
		return "moved"
	case MovedAndScrolled:
		return "moved and scrolled"
	}
	return "unknown"
}

// Content is the text model a Controller drives. Move operations report
// whether the cursor changed position.
type Content interface {
	Content() [][]rune
	ContentRegion() region.Region
	CursorPosition() (col, row int)

	MoveLeft() bool
	MoveRight() bool
	MoveUp() bool
	MoveDown() bool
	MoveCellStart() bool
	MoveCellEnd() bool
	MoveCellNext() bool
	MoveCellPrev() bool
	MoveRowStart() bool
	MoveRowEnd() bool

	Toggle()
	ToggleBarBlock()
	IsBar() bool
	IsBlock() bool
	IsUnderscore() bool
	CursorChar() (rune, bool)
}

type Controller struct {
	// edited text
	model Content
	// visible part of the content
	viewport region.Region

	log *log.Logger
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds the default model from raw text with the viewport at the
// origin.
func New(content string, width, height int, opts ...Option) *Controller {
	return NewWithContent(model.New(content), width, height, opts...)
}

func NewWithContent(content Content, width, height int, opts ...Option) *Controller {
	c := &Controller{
		model:    content,
		viewport: region.New(0, 0, width, height),
		log:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Viewport() region.Region {
	return c.viewport
}

// Resize changes the viewport size and returns the newly exposed areas in
// viewport coordinates: the strip right of the old width first, then the
// strip below the old height. Shrinking exposes nothing.
func (c *Controller) Resize(width, height int) []region.Region {
	oldWidth, oldHeight := c.viewport.Size()
	var dirties []region.Region
	if width > oldWidth {
		dirties = append(dirties, region.New(oldWidth, 0, width-oldWidth, height))
	}
	if height > oldHeight {
		dirties = append(dirties, region.New(0, oldHeight, width, height-oldHeight))
	}
	c.viewport.Resize(width, height)
	c.log.Printf("viewport resized to %v, %d dirty regions", c.viewport, len(dirties))
	return dirties
}

func (c *Controller) CursorPosition() (col, row int) {
	return c.model.CursorPosition()
}

func (c *Controller) Content() [][]rune {
	return c.model.Content()
}

func (c *Controller) ContentRegion() region.Region {
	return c.model.ContentRegion()
}

// VisibleRegion is the part of the content covered by the viewport.
func (c *Controller) VisibleRegion() region.Region {
	return c.viewport.Clip(c.model.ContentRegion())
}

func (c *Controller) CursorInViewport() bool {
	return c.viewport.Contains(c.model.CursorPosition())
}

func (c *Controller) CursorMoveLeft() MoveResult {
	if !c.model.MoveLeft() {
		return NoMove
	}
	x, _ := c.CursorPosition()
	if c.viewport.Left() > c.ContentRegion().Left() && c.viewport.AdjustLeft(x, 1) {
		return c.scrolled()
	}
	return MovedOnly
}

func (c *Controller) CursorMoveRight() MoveResult {
	if !c.model.MoveRight() {
		return NoMove
	}
	x, _ := c.CursorPosition()
	if c.viewport.Right() < c.ContentRegion().Right() && c.viewport.AdjustRight(x, 1) {
		return c.scrolled()
	}
	return MovedOnly
}

func (c *Controller) CursorMoveUp() MoveResult {
	if !c.model.MoveUp() {
		return NoMove
	}
	_, y := c.CursorPosition()
	if c.viewport.Top() > c.ContentRegion().Top() && c.viewport.AdjustUp(y, 1) {
		return c.scrolled()
	}
	return MovedOnly
}

func (c *Controller) CursorMoveDown() MoveResult {
	if !c.model.MoveDown() {
		return NoMove
	}
	_, y := c.CursorPosition()
	if c.viewport.Bottom() < c.ContentRegion().Bottom() && c.viewport.AdjustDown(y, 1) {
		return c.scrolled()
	}
	return MovedOnly
}

func (c *Controller) scrolled() MoveResult {
	c.log.Printf("viewport scrolled to %v", c.viewport)
	return MovedAndScrolled
}

// Cell and row moves stay inside the cursor's row and never scroll.

func (c *Controller) CursorMoveCellStart() MoveResult {
	return intraRow(c.model.MoveCellStart())
}

func (c *Controller) CursorMoveCellEnd() MoveResult {
	return intraRow(c.model.MoveCellEnd())
}

func (c *Controller) CursorMoveCellNext() MoveResult {
	return intraRow(c.model.MoveCellNext())
}

func (c *Controller) CursorMoveCellPrev() MoveResult {
	return intraRow(c.model.MoveCellPrev())
}

func (c *Controller) CursorMoveRowStart() MoveResult {
	return intraRow(c.model.MoveRowStart())
}

func (c *Controller) CursorMoveRowEnd() MoveResult {
	return intraRow(c.model.MoveRowEnd())
}

func intraRow(moved bool) MoveResult {
	if moved {
		return MovedOnly
	}
	return NoMove
}

func (c *Controller) CursorToggle() {
	c.model.Toggle()
}

func (c *Controller) CursorToggleBarBlock() {
	c.model.ToggleBarBlock()
}

func (c *Controller) CursorIsBar() bool {
	return c.model.IsBar()
}

func (c *Controller) CursorIsBlock() bool {
	return c.model.IsBlock()
}

func (c *Controller) CursorIsUnderscore() bool {
	return c.model.IsUnderscore()
}

// CursorChar returns the character under the cursor; ok is false when the
// cursor sits past the last character of its row.
func (c *Controller) CursorChar() (r rune, ok bool) {
	return c.model.CursorChar()
}
