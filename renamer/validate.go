package renamer

import (
	"path/filepath"
	"regexp"
	"runtime"
)

// invalidNameChars matches characters a filename cannot contain on the
// current platform. Windows forbids the full set; everything else only
// the path separator.
var invalidNameChars = func() *regexp.Regexp {
	if runtime.GOOS == "windows" {
		return regexp.MustCompile(`[\\/:*?"<>|]`)
	}
	return regexp.MustCompile(`/`)
}()

// Conflict pairs an original path with the computed name that caused
// the problem.
type Conflict struct {
	OriginalPath string
	NewName      string
}

// ConflictReport classifies every computed name in a batch. The three
// categories are independent; one entry can appear in several.
type ConflictReport struct {
	Duplicates    []Conflict // same new name as an earlier entry
	InvalidChars  []Conflict // new name contains an illegal character
	ExistingFiles []Conflict // target path already on disk
}

// HasConflicts reports whether any category is non-empty.
func (r ConflictReport) HasConflicts() bool {
	return len(r.Duplicates) > 0 || len(r.InvalidChars) > 0 || len(r.ExistingFiles) > 0
}

// Count returns the total number of reported conflicts.
func (r ConflictReport) Count() int {
	return len(r.Duplicates) + len(r.InvalidChars) + len(r.ExistingFiles)
}

// Validate composes the new name for every path at its batch index and
// classifies the results without touching any file. The first entry to
// claim a name is not a duplicate; only later entries computing the
// same name are flagged. Targets resolve into destDir when it is
// non-empty, otherwise next to their original.
func Validate(paths []string, scheme Scheme, destDir string) ConflictReport {
	var report ConflictReport
	firstSeen := make(map[string]string, len(paths))

	for i, path := range paths {
		newName := ComposeName(path, i, scheme)
		conflict := Conflict{OriginalPath: path, NewName: newName}

		if _, taken := firstSeen[newName]; taken {
			report.Duplicates = append(report.Duplicates, conflict)
		} else {
			firstSeen[newName] = path
		}

		if invalidNameChars.MatchString(newName) {
			report.InvalidChars = append(report.InvalidChars, conflict)
		}

		dir := filepath.Dir(path)
		if destDir != "" {
			dir = destDir
		}
		target := filepath.Join(dir, newName)
		if pathExists(target) && !samePath(target, path) {
			report.ExistingFiles = append(report.ExistingFiles, conflict)
		}
	}
	return report
}
