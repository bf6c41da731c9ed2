package main

import "image/color"

// Vec2 is a point in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Canvas is the minimal drawing surface the gauge renders onto. Keeping the
// gauge behind this interface means it can be exercised headless: the app
// hands it an ebiten-backed canvas, the tests hand it a Recorder and inspect
// the command stream.
type Canvas interface {
	// Line strokes a segment of the given width.
	Line(a, b Vec2, width float32, col color.RGBA)
	// FillRect fills the axis-aligned rectangle with min corner at p.
	FillRect(p Vec2, w, h float32, col color.RGBA)
	// FillCircle fills a disc, StrokeCircle outlines one.
	FillCircle(c Vec2, r float32, col color.RGBA)
	StrokeCircle(c Vec2, r, width float32, col color.RGBA)
	// FillQuad fills an arbitrary quad; vertices in order around the
	// perimeter.
	FillQuad(q [4]Vec2, col color.RGBA)
	// GradientQuad fills a quad with a linear blend: c0 at vertices 0 and 1,
	// c1 at vertices 2 and 3.
	GradientQuad(q [4]Vec2, c0, c1 color.RGBA)
	// FillTriangle fills the triangle a-b-c.
	FillTriangle(a, b, c Vec2, col color.RGBA)
	// Arc strokes a circular arc from startDeg to endDeg (degrees, screen
	// convention: 0 at +x, positive clockwise since y grows downward).
	Arc(c Vec2, r, startDeg, endDeg, width float32, col color.RGBA)
	// Text draws s with its top-left corner at p; size is the glyph height
	// in pixels.
	Text(s string, p Vec2, size float32, col color.RGBA)
	// PushClipCircle restricts subsequent drawing to a disc until the
	// matching PopClip.
	PushClipCircle(c Vec2, r float32)
	PopClip()
}

// textAdvance returns the width of s at the given glyph size. The face is a
// fixed 7x13 bitmap font, so width is exact, not a guess.
func textAdvance(s string, size float32) float32 {
	return float32(len(s)) * 7 * size / 13
}

// Command kinds recorded by the Recorder.
type CmdKind int

const (
	CmdLine CmdKind = iota
	CmdFillRect
	CmdFillCircle
	CmdStrokeCircle
	CmdFillQuad
	CmdGradientQuad
	CmdFillTriangle
	CmdArc
	CmdText
	CmdPushClipCircle
	CmdPopClip
)

// Command is one recorded drawing operation. Only the fields relevant to the
// kind are set.
type Command struct {
	Kind       CmdKind
	Pts        []Vec2
	R          float32
	W, H       float32
	Start, End float32
	Size       float32
	Col, Col2  color.RGBA
	Str        string
}

// Recorder is a Canvas that captures the command stream instead of drawing.
// Identical render inputs must produce an identical recording.
type Recorder struct {
	Cmds  []Command
	depth int
}

func (r *Recorder) Line(a, b Vec2, width float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdLine, Pts: []Vec2{a, b}, W: width, Col: col})
}

func (r *Recorder) FillRect(p Vec2, w, h float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdFillRect, Pts: []Vec2{p}, W: w, H: h, Col: col})
}

func (r *Recorder) FillCircle(c Vec2, radius float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdFillCircle, Pts: []Vec2{c}, R: radius, Col: col})
}

func (r *Recorder) StrokeCircle(c Vec2, radius, width float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdStrokeCircle, Pts: []Vec2{c}, R: radius, W: width, Col: col})
}

func (r *Recorder) FillQuad(q [4]Vec2, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdFillQuad, Pts: q[:], Col: col})
}

func (r *Recorder) GradientQuad(q [4]Vec2, c0, c1 color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdGradientQuad, Pts: q[:], Col: c0, Col2: c1})
}

func (r *Recorder) FillTriangle(a, b, c Vec2, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdFillTriangle, Pts: []Vec2{a, b, c}, Col: col})
}

func (r *Recorder) Arc(c Vec2, radius, startDeg, endDeg, width float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdArc, Pts: []Vec2{c}, R: radius, Start: startDeg, End: endDeg, W: width, Col: col})
}

func (r *Recorder) Text(s string, p Vec2, size float32, col color.RGBA) {
	r.Cmds = append(r.Cmds, Command{Kind: CmdText, Pts: []Vec2{p}, Size: size, Str: s, Col: col})
}

func (r *Recorder) PushClipCircle(c Vec2, radius float32) {
	r.depth++
	r.Cmds = append(r.Cmds, Command{Kind: CmdPushClipCircle, Pts: []Vec2{c}, R: radius})
}

func (r *Recorder) PopClip() {
	r.depth--
	r.Cmds = append(r.Cmds, Command{Kind: CmdPopClip})
}

// ClipDepth reports the current clip nesting; zero after a balanced render.
func (r *Recorder) ClipDepth() int { return r.depth }

// Find returns all recorded commands of the given kind, in order.
func (r *Recorder) Find(kind CmdKind) []Command {
	var out []Command
	for _, c := range r.Cmds {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindText returns all text commands whose string equals s.
func (r *Recorder) FindText(s string) []Command {
	var out []Command
	for _, c := range r.Cmds {
		if c.Kind == CmdText && c.Str == s {
			out = append(out, c)
		}
	}
	return out
}
