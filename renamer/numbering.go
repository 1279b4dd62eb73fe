package renamer

import "fmt"

// FormatNumber renders the sequence label for a batch position:
// start + index*step, zero-padded to padding digits. Padding is a
// minimum width only; wider numbers are never truncated.
func FormatNumber(index, padding, start, step int) string {
	if padding < 0 {
		padding = 0
	}
	return fmt.Sprintf("%0*d", padding, start+index*step)
}

// AddSequentialNumber splices the formatted sequence label for index
// into name at the configured position, keeping the extension at the
// very end. With the default options "image.jpg" at index 0 becomes
// "image_01.jpg".
func AddSequentialNumber(name string, index int, opts NumberOptions) string {
	stem, ext := SplitName(name)
	number := FormatNumber(index, opts.Padding, opts.Start, opts.Step)
	if opts.Position == NumberPrefix {
		return number + opts.Separator + stem + ext
	}
	return stem + opts.Separator + number + ext
}
