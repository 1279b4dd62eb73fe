package cmd

import (
	"github.com/renamekit/renamekit/renamer"
)

// PathArgs is the file/directory argument list shared by the commands
// that operate on a batch.
type PathArgs struct {
	Paths []string `arg:"" name:"paths" help:"Files or directories to include (directories expand non-recursively, natural-sorted)" type:"path"`
	Ext   []string `help:"Only include these extensions when expanding directories (e.g. --ext jpg --ext png)"`
	Images bool    `help:"Shorthand for the common image extensions"`
}

// Expand resolves the arguments into the ordered file list for one
// preview/apply cycle.
func (p *PathArgs) Expand() ([]string, error) {
	exts := p.Ext
	if p.Images && len(exts) == 0 {
		exts = renamer.DefaultImageExtensions
	}
	return renamer.ExpandPaths(p.Paths, exts)
}

// SchemeFlags maps the renaming scheme onto CLI flags. A scheme file
// provides the baseline; any flag set on the command line overrides
// the loaded value.
type SchemeFlags struct {
	Scheme string `help:"YAML scheme file to load as the baseline" type:"existingfile"`

	Name   string `help:"Replace the whole filename stem with this name (extension is kept)"`
	Prefix string `help:"Text added before the stem"`
	Suffix string `help:"Text added after the stem"`

	Find    string `help:"Literal text to find in the stem"`
	Replace string `help:"Replacement for matches of --find"`

	Case string `help:"Case transformation for the name" enum:",preserve,lower,upper,title" default:""`

	Number    bool   `help:"Append a sequential number per batch position"`
	Padding   int    `help:"Minimum digits for the sequence number" default:"2"`
	Start     int    `help:"Number assigned to the first file" default:"1"`
	Step      int    `help:"Increment between files" default:"1"`
	Position  string `help:"Where the number goes" enum:",prefix,suffix" default:""`
	Separator string `help:"Separator between name and number" default:"_"`
}

// BuildScheme merges the scheme file (when given) with the flag
// overrides into the effective scheme for this run.
func (f *SchemeFlags) BuildScheme() (renamer.Scheme, error) {
	scheme := renamer.DefaultScheme()
	if f.Scheme != "" {
		loaded, err := renamer.LoadScheme(f.Scheme)
		if err != nil {
			return scheme, err
		}
		scheme = loaded
	}

	if f.Name != "" {
		scheme.ReplaceName = true
		scheme.NewName = f.Name
	}
	if f.Prefix != "" {
		scheme.Prefix = f.Prefix
	}
	if f.Suffix != "" {
		scheme.Suffix = f.Suffix
	}
	if f.Find != "" {
		scheme.Find = f.Find
		scheme.Replace = f.Replace
	}
	if f.Case != "" {
		scheme.CaseOption = renamer.CaseOption(f.Case)
	}

	if f.Number {
		scheme.UseNumbering = true
		scheme.NumberOptions.Padding = f.Padding
		scheme.NumberOptions.Start = f.Start
		scheme.NumberOptions.Step = f.Step
		if f.Position != "" {
			scheme.NumberOptions.Position = renamer.NumberPosition(f.Position)
		}
		scheme.NumberOptions.Separator = f.Separator
	}

	if err := scheme.Validate(); err != nil {
		return scheme, err
	}
	return scheme, nil
}
