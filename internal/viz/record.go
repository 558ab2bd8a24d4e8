package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

const (
	dotW = 4
	dotH = 4
)

// Recorder collects canvas frames and encodes them as an animated GIF.
// Palette index 0 is the background and index i+1 colours layer i.
type Recorder struct {
	palette color.Palette
	delay   int
	frames  []*image.Paletted
}

func NewRecorder(fps int, palette color.Palette) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &Recorder{palette: palette, delay: delay}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterizes the layers, later layers painting over earlier ones.
func (r *Recorder) Capture(layers ...Layer) {
	if len(layers) == 0 {
		return
	}
	w, h := layers[0].Canvas.Dots()
	img := image.NewPaletted(image.Rect(0, 0, w*dotW, h*dotH), r.palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := uint8(0)
			for i, l := range layers {
				if i+1 < len(r.palette) && l.Canvas.Lit(x, y) {
					idx = uint8(i + 1)
				}
			}
			if idx == 0 {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func hexRGBA(hex string) color.RGBA {
	r, g, b := parseHex(hex)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
