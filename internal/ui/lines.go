package ui

import (
	"fmt"
	"strings"

	"wireworld/internal/core"
)

// panelLine is one row of HUD text. Headers are drawn in a brighter color.
type panelLine struct {
	text   string
	header bool
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

func runStateLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

// panelLines flattens a parameter snapshot into the rows drawn on the HUD.
func panelLines(snapshot core.ParameterSnapshot, running bool) []panelLine {
	lines := []panelLine{{text: "State: " + runStateLabel(running)}}
	for _, group := range snapshot.Groups {
		lines = append(lines, panelLine{}, panelLine{text: group.Name, header: true})
		for _, p := range group.Params {
			lines = append(lines, panelLine{text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
		}
	}
	return lines
}

// helpLines lists the driver key bindings.
var helpLines = []string{
	"LMB  cycle cell",
	"RMB  clear cell",
	"SPC  run/pause",
	"N    single step",
	"R/S  reset/reseed",
	"C    clear grid",
	"Q    quit",
}
