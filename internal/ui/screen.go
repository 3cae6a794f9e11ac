// Package ui provides terminal rendering using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen adapts a tcell.Screen to the world view. It implements Canvas.
type Screen struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// NewScreen opens the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal. It is safe to call more than once and from
// another goroutine; a blocked PollEvent then returns nil.
func (s *Screen) Close() {
	s.closeOnce.Do(s.screen.Fini)
}

// PollEvent blocks for the next terminal event. It returns nil once the screen is closed.
// Resize events are answered with a full redraw before being returned.
func (s *Screen) PollEvent() tcell.Event {
	ev := s.screen.PollEvent()
	if _, ok := ev.(*tcell.EventResize); ok {
		s.screen.Sync()
	}
	return ev
}

// Fits reports whether the terminal has at least cols columns and rows rows.
func (s *Screen) Fits(cols, rows int) bool {
	w, h := s.screen.Size()
	return w >= cols && h >= rows
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent draws a single rune with no combining characters.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}
