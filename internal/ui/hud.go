//go:build ebiten

package ui

import (
	"image/color"

	"wireworld/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type stateNamer interface {
	StateNames() []string
}

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []panelLine

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(running bool) {
	if h == nil {
		return
	}
	var snapshot core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snapshot = provider.Parameters()
	}
	h.lines = panelLines(snapshot, running)
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()
	h.drawLegend()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	for _, line := range h.lines {
		y += lineHeight
		if line.text == "" {
			continue
		}
		clr := bodyColor
		if line.header {
			clr = headerColor
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, clr)
	}
	y += 2 * lineHeight
	for _, help := range helpLines {
		text.Draw(h.panel, help, face, panelPadding, y, dimColor)
		y += lineHeight
	}
}

func (h *HUD) drawLegend() {
	provider, ok := h.sim.(paletteProvider)
	if !ok || h.pixel == nil {
		return
	}
	palette := provider.Palette()
	var names []string
	if n, ok := h.sim.(stateNamer); ok {
		names = n.StateNames()
	}
	face := basicfont.Face7x13
	top := h.lastHeight - panelPadding - len(palette)*lineHeight
	for i, c := range palette {
		y := top + i*lineHeight
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatchSize, swatchSize)
		op.GeoM.Translate(panelPadding, float64(y))
		op.ColorScale.ScaleWithColor(c)
		h.panel.DrawImage(h.pixel, op)
		if i < len(names) {
			text.Draw(h.panel, names[i], face, panelPadding+swatchSize+6, y+swatchSize, bodyColor)
		}
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	bodyColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
	swatchSize     = 10
)
