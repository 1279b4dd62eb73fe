package renamer

import (
	"path/filepath"
	"strings"
)

// SplitName splits a filename into stem and extension. Unlike
// filepath.Ext, leading dots never start an extension: ".hidden" is
// all stem and "archive.tar.gz" splits at the final dot.
func SplitName(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}

// AddPrefixSuffix wraps the stem of name with prefix and suffix,
// leaving the extension in place.
func AddPrefixSuffix(name, prefix, suffix string) string {
	stem, ext := SplitName(name)
	return prefix + stem + suffix + ext
}

// ReplaceSubstring replaces every literal occurrence of find in the
// stem of name. An empty find is a no-op.
func ReplaceSubstring(name, find, replace string) string {
	if find == "" {
		return name
	}
	stem, ext := SplitName(name)
	return strings.ReplaceAll(stem, find, replace) + ext
}

// ComposeName maps an original path and its batch position to the new
// filename under scheme. The stages run in a fixed order: full-name
// replacement or prefix/suffix, find/replace, case transformation,
// sequential numbering. The original extension survives every stage.
// Composition never touches the filesystem, so it also previews files
// that do not exist yet.
func ComposeName(path string, index int, scheme Scheme) string {
	stem, ext := SplitName(filepath.Base(path))

	if scheme.ReplaceName {
		stem = scheme.NewName
	} else {
		stem = scheme.Prefix + stem + scheme.Suffix
	}
	if scheme.Find != "" {
		stem = strings.ReplaceAll(stem, scheme.Find, scheme.Replace)
	}

	name := stem + ext
	if scheme.CaseOption != CasePreserve {
		name = ChangeCase(name, scheme.CaseOption)
	}
	if scheme.UseNumbering {
		name = AddSequentialNumber(name, index, scheme.NumberOptions)
	}
	return name
}

// Preview pairs an original basename with its composed replacement.
type Preview struct {
	Original string
	NewName  string
}

// Previews composes the first count entries of paths under scheme. A
// count of zero or less previews the whole batch.
func Previews(paths []string, scheme Scheme, count int) []Preview {
	if count <= 0 || count > len(paths) {
		count = len(paths)
	}
	previews := make([]Preview, 0, count)
	for i := 0; i < count; i++ {
		previews = append(previews, Preview{
			Original: filepath.Base(paths[i]),
			NewName:  ComposeName(paths[i], i, scheme),
		})
	}
	return previews
}
