package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"github.com/renamekit/renamekit/renamer"
	"github.com/renamekit/renamekit/types"
	"github.com/renamekit/renamekit/ui"
	"github.com/renamekit/renamekit/utils"
)

// ApplyCmd validates a batch and, after confirmation, performs the
// renames. Conflicts block the run; pre-flight is always read-only.
type ApplyCmd struct {
	PathArgs
	SchemeFlags
	MoveTo string `name:"move-to" help:"Move files into this folder instead of renaming in place (created if missing)" type:"path"`
	Yes    bool   `help:"Skip the confirmation prompt"`
	NoTUI  bool   `name:"no-tui" help:"Use a plain prompt and progress bar instead of the interactive TUI"`
	DryRun bool   `name:"dry-run" help:"Stop after preview and validation, renaming nothing"`
}

func (cmd *ApplyCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	files, err := cmd.Expand()
	if err != nil {
		return err
	}
	scheme, err := cmd.BuildScheme()
	if err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("renamekit %s", version)))
	if len(files) == 0 {
		fmt.Printf("%s\n", ui.InfoStyle.Render("No files to rename"))
		return nil
	}

	if cmd.MoveTo != "" && utils.IsNetworkDrive(cmd.MoveTo) {
		fmt.Printf("⚠️  %s looks like a network mount, moves will likely fall back to copy+delete\n", cmd.MoveTo)
	}

	conflicts := renamer.Validate(files, scheme, cmd.MoveTo)
	if conflicts.HasConflicts() {
		fmt.Print(renderConflicts(conflicts))
		return fmt.Errorf("%d conflicts found, nothing renamed", conflicts.Count())
	}

	if cmd.DryRun {
		fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Would rename %d files:", len(files))))
		fmt.Print(renderPreviews(files, scheme, conflictDisplayCap))
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No conflicts found (dry run, nothing renamed)"))
		return nil
	}

	// Interactive TUI handles its own confirmation and progress.
	if !cmd.Yes && !cmd.NoTUI {
		return cmd.runWithTUI(files, scheme)
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Renaming %d files:", len(files))))
	fmt.Print(renderPreviews(files, scheme, conflictDisplayCap))

	if !cmd.Yes {
		ok, err := confirm(fmt.Sprintf("Rename %d files?", len(files)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s\n", ui.InfoStyle.Render("Canceled, nothing renamed"))
			return nil
		}
	}

	bar := progressbar.Default(int64(len(files)), "Renaming")
	opts := &renamer.ApplyOptions{
		DestDir: cmd.MoveTo,
		OnResult: func(done, total int, result renamer.ApplyResult) {
			_ = bar.Add(1)
		},
	}
	report := renamer.Apply(context.Background(), renamer.EntriesFor(files), scheme, opts)
	_ = bar.Finish()
	fmt.Println()

	fmt.Print(renderReport(report))
	if report.Status == renamer.StatusError {
		return fmt.Errorf("batch failed: %s", report.Message)
	}
	return nil
}

// runWithTUI hands the confirmation and progress flow to the bubbletea
// model and maps its final report back to the exit status.
func (cmd *ApplyCmd) runWithTUI(files []string, scheme renamer.Scheme) error {
	model := ui.NewApplyModel(files, scheme, cmd.MoveTo)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	report := model.Report()
	if report == nil {
		fmt.Printf("%s\n", ui.InfoStyle.Render("Canceled, nothing renamed"))
		return nil
	}
	fmt.Print(renderReport(*report))
	if report.Status == renamer.StatusError {
		return fmt.Errorf("batch failed: %s", report.Message)
	}
	return nil
}

// confirm asks a y/N question on stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
