package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"wireworld/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewHeader = "header"
	viewStatus = "status"
	viewField  = "field"
	viewHelp   = "help"

	leftColumnWidth = 28
	minWindowHeight = 12
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI drives a sim from a terminal. It owns the run/stop flag; every
// sim call happens on the gocui main loop, either from a key handler or from
// a tick scheduled through Gui.Update.
type ConsoleUI struct {
	sim      core.Sim
	editor   core.Editor
	g        *gocui.Gui
	k        []keyBinding
	interval time.Duration
	seed     int64
	running  bool
	closeCh  chan struct{}
}

// Options configures a ConsoleUI.
type Options struct {
	Interval time.Duration
	Seed     int64
}

// New builds the terminal UI for sim. It takes over the terminal until
// Start returns.
func New(sim core.Sim, o Options) (*ConsoleUI, error) {
	if o.Interval <= 0 {
		o.Interval = 100 * time.Millisecond
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	t := &ConsoleUI{
		sim:      sim,
		g:        g,
		interval: o.Interval,
		seed:     o.Seed,
		closeCh:  make(chan struct{}),
	}
	if e, ok := sim.(core.Editor); ok {
		t.editor = e
	}

	g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'x', "X", "Reset", t.cmdReset, ""},
		{gocui.MouseLeft, "LMB", "Cycle cell", t.cmdPrimary, viewField},
		{gocui.MouseRight, "RMB", "Clear cell", t.cmdSecondary, viewField},
	}
	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func (t *ConsoleUI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

// Start runs the terminal main loop until the user quits.
func (t *ConsoleUI) Start() error {
	go t.tickLoop()
	err := t.g.MainLoop()
	close(t.closeCh)
	t.g.Close()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *ConsoleUI) tickLoop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.closeCh:
			return
		case <-ticker.C:
			t.g.Update(t.tick)
		}
	}
}

func (t *ConsoleUI) tick(g *gocui.Gui) error {
	if !t.running {
		return nil
	}
	t.sim.Step()
	return t.refresh(g)
}

func (t *ConsoleUI) refresh(g *gocui.Gui) error {
	if err := t.renderField(g); err != nil {
		return err
	}
	t.renderStatus(g)
	return nil
}

func (t *ConsoleUI) renderField(g *gocui.Gui) error {
	v, err := g.View(viewField)
	if err != nil {
		// The view is missing while the terminal is too small.
		return nil
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, err = fmt.Fprint(v, fieldText(t.sim.Cells(), t.sim.Size(), maxW, maxH))
	return err
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, err := g.View(viewStatus)
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Colorize("stopped", aurora.BlueFg).String()
	if t.running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	size := t.sim.Size()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", size.W, size.H))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", t.interval))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
	if provider, ok := t.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			_, _ = fmt.Fprintln(v)
			for _, p := range group.Params {
				_, _ = fmt.Fprintln(v, renderProp(p.Label, "%s", p.Value))
			}
		}
	}
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight || maxX <= leftColumnWidth+2 {
		if err := t.headerLayout(g, maxY, "Terminal too small"); err != nil {
			return err
		}
		_ = g.DeleteView(viewStatus)
		_ = g.DeleteView(viewField)
		_ = g.DeleteView(viewHelp)
		return nil
	}
	if err := t.headerLayout(g, 2, "Wireworld"); err != nil {
		return err
	}

	if v, err := g.SetView(viewStatus, 0, 2, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(viewField, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}

	if v, err := g.SetView(viewHelp, -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return t.refresh(g)
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	_, err = fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	return err
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.sim.Step()
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.running = true
	t.renderStatus(t.g)
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.running = false
	t.renderStatus(t.g)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	if c, ok := t.sim.(core.Clearer); ok {
		c.Clear()
	}
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.sim.Reset(t.seed)
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdPrimary(v *gocui.View) error {
	return t.edit(v, core.EditPrimary)
}

func (t *ConsoleUI) cmdSecondary(v *gocui.View) error {
	return t.edit(v, core.EditSecondary)
}

// edit applies e to the cell under the cursor. One rune is drawn per cell,
// so view coordinates are cell coordinates.
func (t *ConsoleUI) edit(v *gocui.View, e core.Edit) error {
	if t.editor == nil || v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	if !t.editor.ApplyEdit(cx+ox, cy+oy, e) {
		return nil
	}
	return t.refresh(t.g)
}
