// Package game wires a tile world to its output: printed rows or the terminal view.
package game

import "fmt"

// Mode selects how the world is presented.
type Mode int

const (
	// ModePrint writes tile IDs row by row to the output.
	ModePrint Mode = iota
	// ModeView opens the interactive terminal view.
	ModeView
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode. An empty name means ModePrint.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "print":
		return ModePrint, nil
	case "view":
		return ModeView, nil
	default:
		return ModePrint, fmt.Errorf("unknown mode %q (want print or view)", s)
	}
}
