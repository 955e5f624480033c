package matrix

import (
	"fmt"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"image"
	"image/color"
	"io"
	"os"
	"time"
)

const footerHeight = 24

var (
	backgroundColor = color.RGBA{A: 255}
	gridColor       = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	pressedColor    = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws a State as an image, one square cell per key, pressed keys
// filled, with an event counter and timestamp underneath.
type Renderer struct {
	state *State
	cell  int
	font  *truetype.Font
}

func NewRenderer(state *State, cell int) *Renderer {
	if cell <= 0 {
		cell = 40
	}
	return &Renderer{
		state: state,
		cell:  cell,
	}
}

// LoadFont replaces the built-in bitmap face with a TTF from disk.
func (r *Renderer) LoadFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	font, err := truetype.Parse(data)
	if err != nil {
		return err
	}
	r.font = font
	return nil
}

func (r *Renderer) Size() (width, height int) {
	return r.state.Cols() * r.cell, r.state.Rows()*r.cell + footerHeight
}

func (r *Renderer) Render() image.Image {
	return r.draw().Image()
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.draw().EncodePNG(w)
}

func (r *Renderer) draw() *gg.Context {
	snapshot := r.state.Snapshot()
	cell := float64(r.cell)
	width, height := r.Size()

	dc := gg.NewContext(width, height)
	if r.font != nil {
		dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{Size: cell / 3}))
	}

	dc.SetColor(backgroundColor)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	dc.SetColor(pressedColor)
	for _, pos := range snapshot.Pressed {
		dc.DrawRectangle(float64(pos.Col)*cell, float64(pos.Row)*cell, cell, cell)
		dc.Fill()
	}

	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for row := 0; row <= snapshot.Rows; row++ {
		y := float64(row) * cell
		dc.DrawLine(0, y, float64(width), y)
	}
	for col := 0; col <= snapshot.Cols; col++ {
		x := float64(col) * cell
		dc.DrawLine(x, 0, x, float64(snapshot.Rows)*cell)
	}
	dc.Stroke()

	dc.SetColor(textColor)
	for _, pos := range snapshot.Pressed {
		label := fmt.Sprintf("%d,%d", pos.Row, pos.Col)
		dc.DrawStringAnchored(label, (float64(pos.Col)+0.5)*cell, (float64(pos.Row)+0.5)*cell, 0.5, 0.5)
	}

	footer := fmt.Sprintf("%d events", snapshot.Events)
	dc.DrawStringAnchored(footer, 4, float64(height)-footerHeight/2, 0, 0.5)
	nowStr := time.Now().Format(time.DateTime)
	dc.DrawStringAnchored(nowStr, float64(width)-4, float64(height)-footerHeight/2, 1, 0.5)

	return dc
}
