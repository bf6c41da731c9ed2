package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 1px white source for DrawTriangles; sampled from the middle of a 3x3 image
// so filtering never bleeds the transparent border.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

var gaugeFace = basicfont.Face7x13

const faceAscent = 11 // basicfont.Face7x13 ascent in pixels

// ebitenCanvas implements Canvas on an ebiten image. Circular clipping is
// done by drawing onto an offscreen layer and masking it with
// BlendDestinationIn before compositing; the layers are cached across frames.
type ebitenCanvas struct {
	target *ebiten.Image

	clips   []clipRegion
	scratch []*ebiten.Image // reusable layer per clip depth
	mask    *ebiten.Image
}

type clipRegion struct {
	img    *ebiten.Image
	center Vec2
	r      float32
}

// NewEbitenCanvas wraps screen in a Canvas; returns nil for a nil screen so
// rendering degrades to a no-op instead of failing.
func NewEbitenCanvas(screen *ebiten.Image) *ebitenCanvas {
	if screen == nil {
		return nil
	}
	return &ebitenCanvas{target: screen}
}

// Retarget points the canvas at a new frame's screen image.
func (ec *ebitenCanvas) Retarget(screen *ebiten.Image) {
	ec.target = screen
	ec.clips = ec.clips[:0]
}

func (ec *ebitenCanvas) dst() *ebiten.Image {
	if n := len(ec.clips); n > 0 {
		return ec.clips[n-1].img
	}
	return ec.target
}

func (ec *ebitenCanvas) Line(a, b Vec2, width float32, col color.RGBA) {
	vector.StrokeLine(ec.dst(), a.X, a.Y, b.X, b.Y, width, col, true)
}

func (ec *ebitenCanvas) FillRect(p Vec2, w, h float32, col color.RGBA) {
	vector.DrawFilledRect(ec.dst(), p.X, p.Y, w, h, col, true)
}

func (ec *ebitenCanvas) FillCircle(c Vec2, r float32, col color.RGBA) {
	vector.DrawFilledCircle(ec.dst(), c.X, c.Y, r, col, true)
}

func (ec *ebitenCanvas) StrokeCircle(c Vec2, r, width float32, col color.RGBA) {
	vector.StrokeCircle(ec.dst(), c.X, c.Y, r, width, col, true)
}

func (ec *ebitenCanvas) FillQuad(q [4]Vec2, col color.RGBA) {
	ec.drawQuad(q, col, col)
}

func (ec *ebitenCanvas) GradientQuad(q [4]Vec2, c0, c1 color.RGBA) {
	ec.drawQuad(q, c0, c1)
}

// drawQuad fills a quad as two triangles with per-vertex colors: c0 at
// vertices 0,1 and c1 at vertices 2,3, which gives the linear gradients the
// horizon ball uses.
func (ec *ebitenCanvas) drawQuad(q [4]Vec2, c0, c1 color.RGBA) {
	vs := make([]ebiten.Vertex, 4)
	for i, p := range q {
		c := c0
		if i >= 2 {
			c = c1
		}
		vs[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255,
		}
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	ec.dst().DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (ec *ebitenCanvas) FillTriangle(a, b, c Vec2, col color.RGBA) {
	pts := [3]Vec2{a, b, c}
	vs := make([]ebiten.Vertex, 3)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: float32(col.R) / 255,
			ColorG: float32(col.G) / 255,
			ColorB: float32(col.B) / 255,
			ColorA: float32(col.A) / 255,
		}
	}
	ec.dst().DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Arc strokes a circular arc as short line segments, the same way the rest
// of the gauge approximates curves.
func (ec *ebitenCanvas) Arc(c Vec2, r, startDeg, endDeg, width float32, col color.RGBA) {
	if endDeg < startDeg {
		startDeg, endDeg = endDeg, startDeg
	}
	const step = 2.0
	px := c.X + r*cos32(radians(startDeg))
	py := c.Y + r*sin32(radians(startDeg))
	for a := startDeg + step; a < endDeg+step; a += step {
		if a > endDeg {
			a = endDeg
		}
		nx := c.X + r*cos32(radians(a))
		ny := c.Y + r*sin32(radians(a))
		vector.StrokeLine(ec.dst(), px, py, nx, ny, width, col, true)
		px, py = nx, ny
		if a == endDeg {
			break
		}
	}
}

func (ec *ebitenCanvas) Text(s string, p Vec2, size float32, col color.RGBA) {
	scale := float64(size) / float64(gaugeFace.Height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	// DrawWithOptions anchors at the baseline dot; shift down by the scaled
	// ascent so p is the top-left corner.
	op.GeoM.Translate(float64(p.X), float64(p.Y)+faceAscent*scale)
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(ec.dst(), s, gaugeFace, op)
}

func (ec *ebitenCanvas) PushClipCircle(c Vec2, r float32) {
	depth := len(ec.clips)
	w, h := ec.target.Bounds().Dx(), ec.target.Bounds().Dy()

	for len(ec.scratch) <= depth {
		ec.scratch = append(ec.scratch, nil)
	}
	layer := ec.scratch[depth]
	if layer == nil || layer.Bounds().Dx() != w || layer.Bounds().Dy() != h {
		if layer != nil {
			layer.Dispose()
		}
		layer = ebiten.NewImage(w, h)
		ec.scratch[depth] = layer
	} else {
		layer.Clear()
	}

	ec.clips = append(ec.clips, clipRegion{img: layer, center: c, r: r})
}

func (ec *ebitenCanvas) PopClip() {
	n := len(ec.clips)
	if n == 0 {
		return
	}
	clip := ec.clips[n-1]
	ec.clips = ec.clips[:n-1]

	w, h := clip.img.Bounds().Dx(), clip.img.Bounds().Dy()
	if ec.mask == nil || ec.mask.Bounds().Dx() != w || ec.mask.Bounds().Dy() != h {
		if ec.mask != nil {
			ec.mask.Dispose()
		}
		ec.mask = ebiten.NewImage(w, h)
	} else {
		ec.mask.Clear()
	}
	vector.DrawFilledCircle(ec.mask, clip.center.X, clip.center.Y, clip.r, color.White, true)

	// Keep layer pixels only where the mask circle covers them, then
	// composite the layer onto whatever is below it.
	maskOp := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	clip.img.DrawImage(ec.mask, maskOp)
	ec.dst().DrawImage(clip.img, nil)
}
