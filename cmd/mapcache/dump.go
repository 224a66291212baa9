package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/mapfilefs/cache"
	"golang.org/x/term"
)

type palette struct {
	id      *color.Color
	expired *color.Color
	heading *color.Color
	frame   *color.Color
}

// paletteFor selects colors for output to w. With mode "auto", colors are
// used only if w is a terminal.
func paletteFor(w io.Writer, mode string) palette {
	p := palette{
		id:      color.New(color.FgBlue),
		expired: color.New(color.FgRed),
		heading: color.New(color.Bold),
		frame:   color.New(color.FgHiBlack),
	}
	enable := false
	switch mode {
	case "always":
		enable = true
	case "never":
	default:
		if f, ok := w.(*os.File); ok {
			enable = term.IsTerminal(int(f.Fd()))
		}
	}
	for _, c := range []*color.Color{p.id, p.expired, p.heading, p.frame} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// width returns the width of the terminal w, or 80.
func width(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

func dump(w io.Writer, c *cache.Cache, p palette) error {
	rule := p.frame.Sprint(strings.Repeat("─", min(width(w), 60)))
	fmt.Fprintln(w, p.heading.Sprint("Index"))
	c.Walk(func(e *cache.Entry, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(w, "%s%s %s\n", indent, p.frame.Sprint("├─"), p.entry(e))
	})
	fmt.Fprintln(w, p.heading.Sprint("Listing"))
	var ids []string
	for e := range c.Entries() {
		ids = append(ids, p.entry(e))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(ids, " "))
	for e := range c.Entries() {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%s %s, %d bytes\n", p.heading.Sprint("Map"), p.entry(e), e.Size())
		if _, err := e.Text.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (p palette) entry(e *cache.Entry) string {
	if e.Expired {
		return p.expired.Sprint(e.String())
	}
	return p.id.Sprint(e.String())
}
