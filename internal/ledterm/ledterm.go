// Package ledterm previews LED channels in a terminal.
package ledterm

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"libdb.so/ledsong/ledseq"
)

// Lamp describes how one channel is drawn.
type Lamp struct {
	Channel ledseq.Channel
	Name    string
	// Color is a hex color like "#ff0000" or an ANSI color number.
	Color string
}

var offStyle = lipgloss.NewStyle().Faint(true)

// Output draws the current state of every lamp on a single terminal line,
// redrawing it whenever a channel changes.
type Output struct {
	w      io.Writer
	lamps  []Lamp
	styles []lipgloss.Style
	states []bool
}

var _ ledseq.Output = (*Output)(nil)

// NewOutput creates a preview that draws the given lamps to w. All lamps
// start off.
func NewOutput(w io.Writer, lamps []Lamp) *Output {
	styles := make([]lipgloss.Style, len(lamps))
	for i, lamp := range lamps {
		styles[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(lamp.Color))
	}

	return &Output{
		w:      w,
		lamps:  lamps,
		styles: styles,
		states: make([]bool, len(lamps)),
	}
}

// SetChannelState implements ledseq.Output.
func (o *Output) SetChannelState(ch ledseq.Channel, on bool) {
	i := o.index(ch)
	if i == -1 {
		return
	}
	o.states[i] = on
	fmt.Fprint(o.w, "\r", o.String())
}

// State returns whether the lamp for ch is lit.
func (o *Output) State(ch ledseq.Channel) bool {
	i := o.index(ch)
	return i != -1 && o.states[i]
}

// Close ends the preview line.
func (o *Output) Close() error {
	_, err := io.WriteString(o.w, "\n")
	return err
}

// String renders the lamps.
func (o *Output) String() string {
	var b strings.Builder
	for i, lamp := range o.lamps {
		if i > 0 {
			b.WriteByte(' ')
		}
		if o.states[i] {
			b.WriteString(o.styles[i].Render("● " + lamp.Name))
		} else {
			b.WriteString(offStyle.Render("○ " + lamp.Name))
		}
	}
	return b.String()
}

func (o *Output) index(ch ledseq.Channel) int {
	for i, lamp := range o.lamps {
		if lamp.Channel == ch {
			return i
		}
	}
	return -1
}
