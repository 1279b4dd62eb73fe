package renamer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Filesystems on these platforms compare paths case-insensitively.
var caseInsensitiveFS = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// samePath reports whether two paths name the same file after Clean
// normalization, folding case on case-insensitive filesystems.
func samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if a == b {
		return true
	}
	if caseInsensitiveFS {
		return strings.EqualFold(a, b)
	}
	return false
}
