package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/corona10/goimagehash"

	"github.com/renamekit/renamekit/renamer"
	"github.com/renamekit/renamekit/types"
	"github.com/renamekit/renamekit/ui"
)

// DupesCmd finds files with identical content before a batch rename,
// so redundant copies can be weeded out first. With --similar it also
// compares images by perceptual hash to catch near-duplicates that
// differ in encoding or size.
type DupesCmd struct {
	PathArgs
	Similar   bool `help:"Also compare images by perceptual hash"`
	Threshold int  `help:"Hamming distance threshold for --similar (0-64, lower is stricter)" default:"10"`
}

func (cmd *DupesCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	files, err := cmd.Expand()
	if err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("renamekit %s", version)))
	fmt.Printf("Scanning %d files for duplicates...\n", len(files))

	duplicates, err := renamer.FindDuplicateContent(context.Background(), files)
	if err != nil {
		return fmt.Errorf("failed to find duplicates: %w", err)
	}

	if len(duplicates) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No exact duplicates found"))
	} else {
		fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of exact duplicates:", len(duplicates))))
		for _, sum := range sortedKeys(duplicates) {
			group := duplicates[sum]
			fmt.Printf("\n🔸 CRC32 %s (%d files):\n", sum, len(group))
			for _, file := range group {
				fmt.Printf("  %s\n", file)
			}
		}
	}

	if cmd.Similar {
		return cmd.findSimilarImages(files)
	}
	return nil
}

// findSimilarImages compares all image pairs by perceptual hash and
// reports the ones within the threshold.
func (cmd *DupesCmd) findSimilarImages(files []string) error {
	type fileHash struct {
		File string
		Hash *goimagehash.ImageHash
	}

	var hashes []fileHash
	for _, file := range files {
		if !renamer.IsImageFile(file) {
			continue
		}
		hash, err := renamer.PerceptualHash(file)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %v", err)))
			continue
		}
		hashes = append(hashes, fileHash{File: file, Hash: hash})
	}

	if len(hashes) < 2 {
		fmt.Printf("%s\n", ui.InfoStyle.Render("Not enough images to compare for similarity"))
		return nil
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %d images for similarity (threshold: %d):", len(hashes), cmd.Threshold)))

	found := false
	for i := 0; i < len(hashes); i++ {
		for j := i + 1; j < len(hashes); j++ {
			distance, err := hashes[i].Hash.Distance(hashes[j].Hash)
			if err != nil {
				fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error comparing %s and %s: %v", hashes[i].File, hashes[j].File, err)))
				continue
			}
			if distance <= cmd.Threshold {
				fmt.Printf("🎯 Similar (distance %d): %s ↔ %s\n", distance, hashes[i].File, hashes[j].File)
				found = true
			}
		}
	}

	if !found {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No similar images found within threshold"))
	}
	return nil
}

func sortedKeys(groups map[string][]string) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
