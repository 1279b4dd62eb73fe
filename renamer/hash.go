package renamer

import (
	"context"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/corona10/goimagehash"
	"golang.org/x/sync/errgroup"
)

// hashWorkers bounds the concurrent file reads in FindDuplicateContent.
const hashWorkers = 4

// CalculateCRC32 calculates the CRC32 checksum of a file.
func CalculateCRC32(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}

// FindDuplicateContent hashes every file and groups paths whose
// contents match, keyed by hex CRC32. Groups with a single member are
// dropped. Only the hashing runs in parallel; group members keep their
// input order.
func FindDuplicateContent(ctx context.Context, paths []string) (map[string][]string, error) {
	hashes := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(hashWorkers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := CalculateCRC32(path)
			if err != nil {
				return fmt.Errorf("failed to hash %s: %w", path, err)
			}
			hashes[i] = fmt.Sprintf("%08X", sum)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hashToFiles := make(map[string][]string)
	for i, path := range paths {
		hashToFiles[hashes[i]] = append(hashToFiles[hashes[i]], path)
	}

	// Filter out hashes with only one file (not duplicates)
	duplicates := make(map[string][]string)
	for sum, files := range hashToFiles {
		if len(files) > 1 {
			duplicates[sum] = files
		}
	}

	return duplicates, nil
}

// PerceptualHash decodes the image at path and computes its perception
// hash for similarity comparison.
func PerceptualHash(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}
