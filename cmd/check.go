package cmd

import (
	"fmt"

	"github.com/renamekit/renamekit/renamer"
	"github.com/renamekit/renamekit/types"
	"github.com/renamekit/renamekit/ui"
)

// CheckCmd runs the pre-flight conflict validation for a batch and
// reports every duplicate, illegal character, and overwrite it finds.
type CheckCmd struct {
	PathArgs
	SchemeFlags
	MoveTo string `name:"move-to" help:"Validate targets against this destination folder instead of each file's own directory" type:"path"`
}

func (cmd *CheckCmd) Run(appCtx *types.AppContext) error {
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
	fmt.Printf("Checking %d files...\n", len(files))

	report := renamer.Validate(files, scheme, cmd.MoveTo)
	if !report.HasConflicts() {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No conflicts found"))
		return nil
	}

	fmt.Print(renderConflicts(report))
	return fmt.Errorf("%d conflicts found", report.Count())
}
