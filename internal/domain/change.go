package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies where a configuration change came from.
type Source int

const (
	// SourceCLI is a change made through dk set.
	SourceCLI Source = iota

	// SourceEditor is a change made through the interactive editor.
	SourceEditor
)

func (s Source) String() string {
	switch s {
	case SourceCLI:
		return "cli"
	case SourceEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// Change is one recorded mutation of a configuration entry.
type Change struct {
	ID        uuid.UUID
	Section   string // "" is the unnamed default section
	Entry     string
	OldValue  string
	HadOld    bool // false when the entry was created by this change
	NewValue  string
	Source    Source
	Timestamp time.Time
}

// ChangeFilter narrows a history query. Zero values mean "no filter";
// Limit 0 means no limit.
type ChangeFilter struct {
	Section string
	Entry   string
	Limit   int
}
