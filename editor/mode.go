package editor

import (
	"fmt"
	"strings"
)

// Mode selects what a tap does.
type Mode int

const (
	// ModeAdd appends a point.
	ModeAdd Mode = iota

	// ModeInsert inserts a point between its nearest neighbours.
	ModeInsert

	// ModeDelete removes the nearest point.
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeInsert:
		return "insert"
	case ModeDelete:
		return "delete"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return ModeAdd, nil
	case "insert":
		return ModeInsert, nil
	case "delete":
		return ModeDelete, nil
	}
	return ModeAdd, fmt.Errorf("editor: unknown mode %q", s)
}
