package tui

import (
	"bytes"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"

	"github.com/logrusorgru/aurora"
)

const cropNotice = "The field size is larger than the viewing area"

var (
	headGlyph      = aurora.Colorize("█", aurora.BlueFg).String()
	tailGlyph      = aurora.Colorize("█", aurora.RedFg).String()
	conductorGlyph = aurora.Colorize("█", aurora.YellowFg).String()
	emptyGlyph     = " "
)

// glyphFor maps a cell state to the single terminal cell drawn for it.
func glyphFor(s wireworld.State) string {
	switch s {
	case wireworld.Empty:
		return emptyGlyph
	case wireworld.ElectronHead:
		return headGlyph
	case wireworld.ElectronTail:
		return tailGlyph
	case wireworld.Conductor:
		return conductorGlyph
	}
	return "?"
}

// fieldText renders the display buffer one rune per cell, cropped to a
// maxW x maxH view. When cropping drops rows the last visible row carries a
// notice instead of cells.
func fieldText(cells []uint8, size core.Size, maxW, maxH int) string {
	if maxW <= 0 || maxH <= 0 || len(cells) != size.Area() {
		return ""
	}
	crop := size.W > maxW || size.H > maxH
	var b bytes.Buffer
	for y := 0; y < size.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red(cropNotice).String())
			break
		}
		for x := 0; x < size.W && x < maxW; x++ {
			idx, _ := size.Index(x, y)
			b.WriteString(glyphFor(wireworld.State(cells[idx])))
		}
	}
	return b.String()
}
