package viz

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/orbitsim/internal/render"
)

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel
// in its cell's colour.
func CanvasToSVG(canvas *Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	sw, sh := canvas.SubSize()
	width, height := float64(sw)*scale, float64(sh)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, render.Hex(render.Background))

	dotRadius := scale * 0.4
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			on, hex := canvas.Pixel(x, y)
			if !on {
				continue
			}
			if hex == "" {
				hex = render.Hex(render.Body)
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, hex)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SaveSnapshot writes the canvas as SVG to path.
func SaveSnapshot(canvas *Canvas, path string) error {
	return os.WriteFile(path, []byte(CanvasToSVG(canvas, 4)), 0644)
}
