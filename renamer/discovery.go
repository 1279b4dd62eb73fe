package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultImageExtensions is the extension set the file pickers default
// to when filtering for images.
var DefaultImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff"}

// IsImageFile checks if the given file extension is one of the known
// image file extensions.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range DefaultImageExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// ListFiles returns the files directly inside dir (no recursion),
// natural-sorted by name. When exts is non-empty only matching
// extensions are kept; the comparison ignores case and tolerates a
// missing leading dot.
func ListFiles(dir string, exts []string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if len(exts) > 0 && !matchesExtension(entry.Name(), exts) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.SliceStable(files, func(i, j int) bool {
		return NaturalLess(filepath.Base(files[i]), filepath.Base(files[j]))
	})
	return files, nil
}

func matchesExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		want = strings.ToLower(want)
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == want {
			return true
		}
	}
	return false
}

// ExpandPaths resolves a mixed list of file and directory arguments
// into a flat ordered file list. Directories expand via ListFiles;
// explicit files pass through regardless of exts.
func ExpandPaths(paths []string, exts []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			listed, err := ListFiles(path, exts)
			if err != nil {
				return nil, err
			}
			files = append(files, listed...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// NaturalLess orders names so embedded numbers compare by value,
// putting img2 before img10. Letters compare case-insensitively.
func NaturalLess(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ca, cb := a[ai], b[bi]
		digitA := ca >= '0' && ca <= '9'
		digitB := cb >= '0' && cb <= '9'

		if digitA && digitB {
			startA, startB := ai, bi
			for ai < len(a) && a[ai] >= '0' && a[ai] <= '9' {
				ai++
			}
			for bi < len(b) && b[bi] >= '0' && b[bi] <= '9' {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			// Equal values: fewer leading zeros first.
			if lenA, lenB := ai-startA, bi-startB; lenA != lenB {
				return lenA < lenB
			}
			continue
		}

		la, lb := lowerByte(ca), lowerByte(cb)
		if la != lb {
			return la < lb
		}
		ai++
		bi++
	}
	return len(a) < len(b)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
