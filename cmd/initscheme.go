package cmd

import (
	"fmt"
	"os"

	"github.com/renamekit/renamekit/renamer"
	"github.com/renamekit/renamekit/ui"
)

// InitSchemeCmd writes a starter scheme file with every option at its
// default, ready to edit and pass back via --scheme.
type InitSchemeCmd struct {
	Output string `help:"Where to write the scheme file" default:"scheme.yaml" type:"path"`
	Force  bool   `help:"Overwrite an existing file"`
}

func (cmd *InitSchemeCmd) Run() error {
	if !cmd.Force {
		if _, err := os.Stat(cmd.Output); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", cmd.Output)
		}
	}

	if err := renamer.SaveScheme(cmd.Output, renamer.DefaultScheme()); err != nil {
		return err
	}
	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Wrote %s", cmd.Output)))
	return nil
}
