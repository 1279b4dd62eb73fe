package ui

import "github.com/renamekit/renamekit/renamer"

// TUI message types for the apply flow

// EntryAppliedMsg reports one finished entry while the batch runs.
type EntryAppliedMsg struct {
	Done   int
	Total  int
	Result renamer.ApplyResult
}

// ApplyDoneMsg carries the final report once the batch completes.
type ApplyDoneMsg struct {
	Report renamer.ApplyReport
}
