package geometry

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// PopplerRasterizer renders pages via the pdftoppm binary. It is only
// needed for scanned pages with no text layer, so a missing binary
// surfaces as an error on those pages and is otherwise harmless.
type PopplerRasterizer struct{}

func (PopplerRasterizer) RenderPage(ctx context.Context, path string, page int, dpi int) ([]byte, error) {
	// With a single selected page and no output prefix, pdftoppm writes
	// the image to stdout.
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		path)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm page %d: %w", page, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("pdftoppm page %d: empty image", page)
	}
	return out, nil
}
