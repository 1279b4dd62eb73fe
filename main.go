package main

import (
	"github.com/alecthomas/kong"

	"github.com/renamekit/renamekit/cmd"
	"github.com/renamekit/renamekit/types"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

type CLI struct {
	Preview    cmd.PreviewCmd    `cmd:"" help:"Show the new names for a batch without renaming anything"`
	Check      cmd.CheckCmd      `cmd:"" help:"Detect duplicate names, illegal characters, and overwrites before renaming"`
	Apply      cmd.ApplyCmd      `cmd:"" help:"Validate, confirm, and perform the renames"`
	Dupes      cmd.DupesCmd      `cmd:"" help:"Find files with duplicate content"`
	InitScheme cmd.InitSchemeCmd `cmd:"" name:"init-scheme" help:"Write a starter scheme file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("renamekit"),
		kong.Description("Batch-rename files under a configurable naming scheme, with preview and conflict detection."),
	)
	appCtx := &types.AppContext{Version: Version}
	err := ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
