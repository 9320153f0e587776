package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGIFPath is where Save writes when given an empty path.
const DefaultGIFPath = "orbitsim.gif"

const (
	charW, charH = 8, 16
	maxFrames    = 900
)

// Recorder collects canvas frames for an animated GIF. One palette entry
// per distinct cell colour is allocated on first use.
type Recorder struct {
	frames  []*image.Paletted
	palette color.Palette
	index   map[string]uint8
}

func NewRecorder() *Recorder {
	bg, err := colorful.Hex(string(CurrentTheme.Background))
	if err != nil {
		bg = colorful.Color{}
	}
	fg, err := colorful.Hex(string(CurrentTheme.Text))
	if err != nil {
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}
	return &Recorder{
		palette: color.Palette{bg.Clamped(), fg.Clamped()},
		index:   map[string]uint8{"": 1},
	}
}

func (r *Recorder) Frames() int { return len(r.frames) }

func (r *Recorder) colorIndex(hex string) uint8 {
	if i, ok := r.index[hex]; ok {
		return i
	}
	c, err := colorful.Hex(hex)
	if err != nil || len(r.palette) >= 256 {
		return 1
	}
	r.palette = append(r.palette, c.Clamped())
	i := uint8(len(r.palette) - 1)
	r.index[hex] = i
	return i
}

// Capture rasterises the canvas, 8x16 pixels per cell.
func (r *Recorder) Capture(c *Canvas) {
	if len(r.frames) >= maxFrames {
		return
	}
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), nil)
	dotW, dotH := charW/2, charH/4

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern <= 0 {
				continue
			}
			ci := r.colorIndex(c.Colors[row][col])
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, ci)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save encodes the frames to path and returns the path written, or "" if
// nothing was captured.
func (r *Recorder) Save(path string) (string, error) {
	if len(r.frames) == 0 {
		return "", nil
	}
	if path == "" {
		path = DefaultGIFPath
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		frame.Palette = r.palette
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return "", err
	}
	return path, nil
}
