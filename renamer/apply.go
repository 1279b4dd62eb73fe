package renamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Outcome labels recorded per entry in an ApplyReport.
const (
	OutcomeSuccess           = "success"
	OutcomeFileNotFound      = "file not found"
	OutcomePermissionDenied  = "permission denied"
	OutcomeDestinationExists = "destination file already exists"
	OutcomeCanceled          = "canceled"
)

// ApplyStatus summarizes a whole batch.
type ApplyStatus string

const (
	StatusSuccess ApplyStatus = "success" // every entry renamed
	StatusPartial ApplyStatus = "partial" // some renamed, some failed
	StatusError   ApplyStatus = "error"   // nothing renamed
)

// Entry is one file in a batch: its path plus the fixed position index
// that drives sequential numbering.
type Entry struct {
	Path  string
	Index int
}

// EntriesFor assigns positional indices to paths, the standard batch
// for one preview/apply cycle.
func EntriesFor(paths []string) []Entry {
	entries := make([]Entry, len(paths))
	for i, path := range paths {
		entries[i] = Entry{Path: path, Index: i}
	}
	return entries
}

// ApplyResult records what happened to one entry.
type ApplyResult struct {
	OriginalPath string
	NewPath      string // set on success
	Outcome      string // OutcomeSuccess or a failure label
	Err          error  // underlying error, nil on success
}

// Success reports whether the entry was renamed.
func (r ApplyResult) Success() bool { return r.Err == nil }

// ApplyReport is the aggregate outcome of one Apply call. Results keeps
// the input order, one element per entry.
type ApplyReport struct {
	Status  ApplyStatus
	Results []ApplyResult
	Message string
}

// ApplyOptions tune a single Apply run.
type ApplyOptions struct {
	// DestDir moves files into this folder instead of renaming them in
	// place. Created before any entry is processed.
	DestDir string

	// OnResult, when set, is called after each entry with the running
	// completion count.
	OnResult func(done, total int, result ApplyResult)
}

// Apply executes the batch: for each entry in order, compose the new
// name and rename (or move) the file. Failures are isolated per entry
// and never abort the batch. Canceling ctx stops filesystem work and
// records the remaining entries as canceled, so the report always
// carries one result per entry in input order.
func Apply(ctx context.Context, entries []Entry, scheme Scheme, opts *ApplyOptions) ApplyReport {
	if opts == nil {
		opts = &ApplyOptions{}
	}

	// The destination must exist before the first entry; creating it
	// lazily would let early failures race later successes.
	if opts.DestDir != "" {
		if err := os.MkdirAll(opts.DestDir, 0755); err != nil {
			return ApplyReport{
				Status:  StatusError,
				Results: []ApplyResult{},
				Message: fmt.Sprintf("Failed to create destination folder: %v", err),
			}
		}
	}

	report := ApplyReport{Results: make([]ApplyResult, 0, len(entries))}
	var succeeded, failed int

	for _, entry := range entries {
		result := ApplyResult{OriginalPath: entry.Path, Outcome: OutcomeSuccess}

		if err := ctx.Err(); err != nil {
			result.Outcome = OutcomeCanceled
			result.Err = err
		} else {
			newName := ComposeName(entry.Path, entry.Index, scheme)
			dir := filepath.Dir(entry.Path)
			if opts.DestDir != "" {
				dir = opts.DestDir
			}
			target := filepath.Join(dir, newName)

			if err := renameEntry(entry.Path, target, opts.DestDir != ""); err != nil {
				result.Outcome = failureLabel(err)
				result.Err = err
			} else {
				result.NewPath = target
			}
		}

		if result.Success() {
			succeeded++
		} else {
			failed++
		}
		report.Results = append(report.Results, result)
		if opts.OnResult != nil {
			opts.OnResult(len(report.Results), len(entries), result)
		}
	}

	switch {
	case failed == 0:
		report.Status = StatusSuccess
	case succeeded > 0:
		report.Status = StatusPartial
	default:
		report.Status = StatusError
	}

	report.Message = fmt.Sprintf("Renamed %d files successfully", succeeded)
	if failed > 0 {
		report.Message += fmt.Sprintf(", %d failed", failed)
	}
	return report
}

// renameEntry renames source to target, refusing to overwrite an
// existing file that is not the source itself. os.Rename would clobber
// it silently on POSIX systems.
func renameEntry(source, target string, moving bool) error {
	if pathExists(target) && !samePath(target, source) {
		return fmt.Errorf("%w: %s", fs.ErrExist, target)
	}
	if !moving {
		return os.Rename(source, target)
	}
	return moveFile(source, target)
}

// moveFile moves source to target, falling back to copy+delete when
// the direct rename fails, which covers cross-device destinations.
func moveFile(source, target string) error {
	if err := os.Rename(source, target); err == nil {
		return nil
	}
	if err := copyFile(source, target); err != nil {
		return err
	}
	return os.Remove(source)
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(target)
		return err
	}
	return out.Close()
}

// failureLabel classifies an operation error into the outcome taxonomy.
func failureLabel(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return OutcomeFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return OutcomePermissionDenied
	case errors.Is(err, fs.ErrExist):
		return OutcomeDestinationExists
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
