package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/sim"
)

// WriteOrbitsSVG draws every body's recorded path through vp, followed by
// a disc at its final position.
func WriteOrbitsSVG(w io.Writer, r *sim.Result, vp render.Viewport) error {
	if len(r.Frames) == 0 {
		return ErrEmptyResult
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, vp.Width, vp.Height, vp.Width, vp.Height, render.Hex(render.Background))

	n := len(r.Frames[0])
	for body := 0; body < n; body++ {
		sb.WriteString(`<path fill="none" stroke="`)
		sb.WriteString(render.Hex(render.TrailHead))
		sb.WriteString(`" stroke-width="1.5" d="M`)
		for i, f := range r.Frames {
			p := vp.ToScreen(f[body].Position)
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	last := r.Frames[len(r.Frames)-1]
	for _, b := range last {
		p := vp.ToScreen(b.Position)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", p.X, p.Y, render.Hex(render.Body))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
