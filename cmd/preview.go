package cmd

import (
	"fmt"

	"github.com/renamekit/renamekit/types"
	"github.com/renamekit/renamekit/ui"
)

// PreviewCmd composes the new names for a batch and prints a sample
// without touching any file.
type PreviewCmd struct {
	PathArgs
	SchemeFlags
	Limit int `help:"Number of entries to show, 0 for all" default:"5"`
}

func (cmd *PreviewCmd) Run(appCtx *types.AppContext) error {
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
		fmt.Printf("%s\n", ui.InfoStyle.Render("No files to preview"))
		return nil
	}

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Preview of %d files:", len(files))))
	fmt.Print(renderPreviews(files, scheme, cmd.Limit))
	return nil
}
