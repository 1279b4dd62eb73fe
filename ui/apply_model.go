package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renamekit/renamekit/renamer"
)

// previewDisplayCap limits the preview lines on the confirmation
// screen.
const previewDisplayCap = 10

// applyPhase tracks where the apply flow is.
type applyPhase int

const (
	phaseConfirming applyPhase = iota
	phaseApplying
	phaseDone
)

// ApplyModel is the TUI for one batch apply: it shows the preview,
// asks for confirmation, streams per-file progress while the batch
// runs on a worker goroutine, and renders the outcome report.
type ApplyModel struct {
	paths   []string
	scheme  renamer.Scheme
	destDir string

	phase    applyPhase
	bar      progress.Model
	done     int
	total    int
	lastLine string
	failures []renamer.ApplyResult
	report   *renamer.ApplyReport

	cancel  context.CancelFunc
	results chan tea.Msg

	width    int
	quitting bool
}

// NewApplyModel builds the model for a batch. The batch is not started
// until the user confirms.
func NewApplyModel(paths []string, scheme renamer.Scheme, destDir string) *ApplyModel {
	return &ApplyModel{
		paths:   paths,
		scheme:  scheme,
		destDir: destDir,
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   len(paths),
	}
}

// Report returns the outcome once the batch has finished, nil before
// that (including when the user declined).
func (m *ApplyModel) Report() *renamer.ApplyReport { return m.report }

// Init implements tea.Model
func (m *ApplyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ApplyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8

	case EntryAppliedMsg:
		m.done = msg.Done
		m.total = msg.Total
		if msg.Result.Success() {
			m.lastLine = fmt.Sprintf("✓ %s", filepath.Base(msg.Result.NewPath))
		} else {
			m.lastLine = fmt.Sprintf("❌ %s: %s", filepath.Base(msg.Result.OriginalPath), msg.Result.Outcome)
			m.failures = append(m.failures, msg.Result)
		}
		return m, m.waitForResult()

	case ApplyDoneMsg:
		report := msg.Report
		m.report = &report
		m.phase = phaseDone
		return m, nil
	}

	return m, nil
}

func (m *ApplyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseConfirming:
		switch msg.String() {
		case "y", "Y", "enter":
			return m, m.startApply()
		case "n", "N", "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case phaseApplying:
		// Cancel is cooperative: remaining entries are recorded as
		// canceled and the report still arrives.
		if msg.String() == "ctrl+c" && m.cancel != nil {
			m.cancel()
		}

	case phaseDone:
		switch msg.String() {
		case "q", "enter", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// startApply launches the batch on a goroutine and begins draining its
// result channel. Entries are still applied one at a time, in order.
func (m *ApplyModel) startApply() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.phase = phaseApplying
	m.results = make(chan tea.Msg, len(m.paths)+1)

	entries := renamer.EntriesFor(m.paths)
	scheme := m.scheme
	opts := &renamer.ApplyOptions{
		DestDir: m.destDir,
		OnResult: func(done, total int, result renamer.ApplyResult) {
			m.results <- EntryAppliedMsg{Done: done, Total: total, Result: result}
		},
	}

	ch := m.results
	go func() {
		report := renamer.Apply(ctx, entries, scheme, opts)
		ch <- ApplyDoneMsg{Report: report}
		close(ch)
	}()

	return m.waitForResult()
}

func (m *ApplyModel) waitForResult() tea.Cmd {
	ch := m.results
	return func() tea.Msg {
		return <-ch
	}
}

// View implements tea.Model
func (m *ApplyModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.phase {
	case phaseApplying:
		return m.renderApplying()
	case phaseDone:
		return m.renderDone()
	default:
		return m.renderConfirmation()
	}
}

func (m *ApplyModel) renderConfirmation() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(fmt.Sprintf("Rename %d files", len(m.paths))))
	content.WriteString("\n\n")

	previews := renamer.Previews(m.paths, m.scheme, previewDisplayCap)
	for _, p := range previews {
		content.WriteString(fmt.Sprintf("  %s → %s\n", p.Original, SuccessStyle.Render(p.NewName)))
	}
	if remaining := len(m.paths) - len(previews); remaining > 0 {
		content.WriteString(DimStyle.Render(fmt.Sprintf("  … and %d more files", remaining)))
		content.WriteString("\n")
	}

	if m.destDir != "" {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Moving into %s", m.destDir)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString("Press 'y' to rename, 'n' to cancel")
	return content.String()
}

func (m *ApplyModel) renderApplying() string {
	var content strings.Builder

	content.WriteString(ProcessingStyle.Render(fmt.Sprintf("Renaming... %d/%d", m.done, m.total)))
	content.WriteString("\n\n")

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
	}
	content.WriteString(m.bar.ViewAs(ratio))
	content.WriteString("\n\n")

	if m.lastLine != "" {
		content.WriteString(m.lastLine)
		content.WriteString("\n")
	}
	content.WriteString(DimStyle.Render("ctrl+c to cancel"))
	return content.String()
}

func (m *ApplyModel) renderDone() string {
	var content strings.Builder

	switch m.report.Status {
	case renamer.StatusSuccess:
		content.WriteString(SuccessStyle.Render("✅ " + m.report.Message))
	case renamer.StatusPartial:
		content.WriteString(InfoStyle.Render("⚠️  " + m.report.Message))
	default:
		content.WriteString(ErrorStyle.Render("❌ " + m.report.Message))
	}
	content.WriteString("\n")

	for _, r := range m.failures {
		content.WriteString(fmt.Sprintf("  %s: %s\n", r.OriginalPath, r.Outcome))
	}

	content.WriteString("\n")
	content.WriteString("Press 'q' to quit")
	return content.String()
}
