// Package render reports terminal geometry so output can be sized and
// aspect-corrected for the screen it will be drawn on.
package render

import (
	"os"

	"golang.org/x/sys/unix"
)

// Assumed cell shape when the terminal doesn't report pixel dimensions.
const defaultCellAspect = 2.0

type WinSize struct {
	Rows int
	Cols int

	// Pixel dimensions of the whole window; zero on terminals that don't
	// report them.
	Width  int
	Height int
}

func GetWinSize() (WinSize, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return WinSize{}, os.NewSyscallError("GetWinsize", err)
	}
	return WinSize{
		Rows:   int(ws.Row),
		Cols:   int(ws.Col),
		Width:  int(ws.Xpixel),
		Height: int(ws.Ypixel),
	}, nil
}

// CellAspect returns the height/width ratio of a single character cell.
// Cells are rectangular, not square, so rendered images need a vertical
// scale factor to keep their proportions.
func (w WinSize) CellAspect() float64 {
	if w.Width == 0 || w.Height == 0 || w.Rows == 0 || w.Cols == 0 {
		return defaultCellAspect
	}
	return float64(w.Height) * float64(w.Cols) / float64(w.Rows) / float64(w.Width)
}

// AspectCorrection is the factor applied to an output height to undo the
// vertical stretch introduced by tall cells.
func (w WinSize) AspectCorrection() float64 {
	return 1 / w.CellAspect()
}
