package main

import (
	"fmt"
	"image/color"
	"math"
)

// Gauge geometry, in fractions of the gauge radius R. 30 degrees of pitch
// spans one full radius; slip of ±1 moves the ball ±0.12R.
const (
	bezelFrac     = 0.92 // R as a fraction of the half-size
	horizonClip   = 0.88 // horizon ball clip radius
	pitchSpanDeg  = 30   // degrees of pitch per R of vertical travel
	slipTravel    = 0.12 // ball offset at slip = ±1
	vsFullScale   = 2000 // feet/minute at the tape ends
	vsTravel      = 0.35 // pointer offset at full scale
	bankArcSweep  = 98   // half-sweep of the bank arc, degrees
	roseOffsetY   = 0.40 // rose center above gauge center
	roseRadius    = 0.30
	slipTubeY     = 0.62 // tube center below gauge center
	slipTubeHalfW = 0.18
)

// Gauge renders the round AV-30-style attitude indicator. It is a pure
// function of (smoothed state, flight state, size): identical inputs issue
// an identical command sequence to the canvas.
type Gauge struct {
	faceColor     color.RGBA
	skyTop        color.RGBA
	skyHorizon    color.RGBA
	groundHorizon color.RGBA
	groundBottom  color.RGBA
	lineColor     color.RGBA
	textColor     color.RGBA
	labelColor    color.RGBA
	accentColor   color.RGBA
	northColor    color.RGBA
	bezelColor    color.RGBA
	bezelDark     color.RGBA
	tubeColor     color.RGBA

	iasColor  color.RGBA
	altColor  color.RGBA
	distColor color.RGBA
	wptColor  color.RGBA
	baroColor color.RGBA
	saltColor color.RGBA
}

// NewGauge creates a gauge with the standard instrument palette.
func NewGauge() *Gauge {
	return &Gauge{
		faceColor:     color.RGBA{16, 16, 18, 255},
		skyTop:        color.RGBA{0, 70, 140, 255},
		skyHorizon:    color.RGBA{60, 140, 210, 255},
		groundHorizon: color.RGBA{150, 100, 50, 255},
		groundBottom:  color.RGBA{80, 50, 25, 255},
		lineColor:     color.RGBA{255, 255, 255, 255},
		textColor:     color.RGBA{255, 255, 255, 255},
		labelColor:    color.RGBA{170, 170, 180, 255},
		accentColor:   color.RGBA{255, 200, 0, 255},
		northColor:    color.RGBA{255, 80, 80, 255},
		bezelColor:    color.RGBA{90, 90, 95, 255},
		bezelDark:     color.RGBA{40, 40, 44, 255},
		tubeColor:     color.RGBA{0, 0, 0, 200},

		iasColor:  color.RGBA{0, 220, 255, 255},
		altColor:  color.RGBA{255, 255, 255, 255},
		distColor: color.RGBA{120, 255, 120, 255},
		wptColor:  color.RGBA{120, 255, 120, 255},
		baroColor: color.RGBA{255, 255, 255, 255},
		saltColor: color.RGBA{150, 150, 160, 255},
	}
}

// pitchOffsetPx maps pitch in degrees to the downward pixel offset of the
// horizon line. ±30° is exactly ±R.
func pitchOffsetPx(pitchDeg, r float32) float32 {
	return pitchDeg * r / pitchSpanDeg
}

// slipOffsetPx maps slip (-1..1) to the ball's horizontal pixel offset.
func slipOffsetPx(slip, r float32) float32 {
	return slip * slipTravel * r
}

// vsPointerOffsetPx maps vertical speed to the pointer's upward pixel offset,
// clamped at ±vsFullScale. The clamp is positional only; printed values stay
// raw.
func vsPointerOffsetPx(fpm, r float32) float32 {
	return clamp32(fpm, -vsFullScale, vsFullScale) / vsFullScale * vsTravel * r
}

// Draw renders one frame of the gauge onto cv. A nil canvas is a no-op, not
// an error: the instrument draws nothing when it has no surface.
func (g *Gauge) Draw(cv Canvas, sm SmoothedState, in FlightState, size float32) {
	if cv == nil {
		return
	}

	half := size / 2
	center := Vec2{half, half}
	r := half * bezelFrac

	// Instrument face under everything; the horizon ball only covers the
	// inner 0.88R.
	cv.FillCircle(center, r, g.faceColor)

	g.drawHorizon(cv, center, r, sm.Pitch, sm.Roll)
	g.drawBankArc(cv, center, r, sm.Roll)
	g.drawAircraftSymbol(cv, center, r)
	g.drawSlipIndicator(cv, center, r, sm.Slip)
	g.drawRose(cv, center, r, sm.Heading)
	g.drawReadouts(cv, center, r, in)
	g.drawVSTape(cv, center, r, in.VerticalSpeed)
	g.drawBezel(cv, center, half, size)
}

// polar returns the point at angleDeg/radius from c. Screen convention:
// 0° points right, angles grow clockwise (y is down), so straight up is -90.
func polar(c Vec2, angleDeg, radius float32) Vec2 {
	a := radians(angleDeg)
	return Vec2{c.X + radius*cos32(a), c.Y + radius*sin32(a)}
}

// drawHorizon paints the sky/ground ball and the pitch ladder, clipped to
// the inner circle and rotated by -roll around the gauge center.
func (g *Gauge) drawHorizon(cv Canvas, center Vec2, r, pitch, roll float32) {
	cv.PushClipCircle(center, horizonClip*r)

	rot := radians(-roll)
	off := pitchOffsetPx(pitch, r)
	ext := 1.8 * r // covers the clip circle at any roll angle

	rp := func(x, y float32) Vec2 {
		px, py := rotatePoint(center.X+x, center.Y+y, center.X, center.Y, rot)
		return Vec2{px, py}
	}

	// Sky: dark overhead blending to light at the horizon.
	cv.GradientQuad([4]Vec2{
		rp(-ext, off-ext), rp(ext, off-ext),
		rp(ext, off), rp(-ext, off),
	}, g.skyTop, g.skyHorizon)

	// Ground: light at the horizon blending to dark below.
	cv.GradientQuad([4]Vec2{
		rp(-ext, off), rp(ext, off),
		rp(ext, off+ext), rp(-ext, off+ext),
	}, g.groundHorizon, g.groundBottom)

	cv.Line(rp(-ext, off), rp(ext, off), 0.012*r, g.lineColor)

	g.drawPitchLadder(cv, center, r, off, rot)

	cv.PopClip()
}

// drawPitchLadder draws ticks every 10° from -80 to +80 (skipping zero, the
// horizon line itself), rotated with the ball.
func (g *Gauge) drawPitchLadder(cv Canvas, center Vec2, r, off, rot float32) {
	rp := func(x, y float32) Vec2 {
		px, py := rotatePoint(center.X+x, center.Y+y, center.X, center.Y, rot)
		return Vec2{px, py}
	}

	lblSize := 0.09 * r
	for deg := -80; deg <= 80; deg += 10 {
		if deg == 0 {
			continue
		}
		y := off - pitchOffsetPx(float32(deg), r)

		halfLen := 0.10 * r
		if deg%20 == 0 {
			halfLen = 0.18 * r
		}

		cv.Line(rp(-halfLen, y), rp(halfLen, y), 0.008*r, g.lineColor)

		// Negative pitch ticks carry downward chevrons at both ends.
		if deg < 0 {
			drop := 0.035 * r
			cv.Line(rp(-halfLen, y), rp(-halfLen, y+drop), 0.008*r, g.lineColor)
			cv.Line(rp(halfLen, y), rp(halfLen, y+drop), 0.008*r, g.lineColor)
		}

		lbl := fmt.Sprintf("%d", absInt(deg))
		gap := 0.04 * r
		cv.Text(lbl, rp(-halfLen-gap-textAdvance(lbl, lblSize), y-lblSize/2), lblSize, g.textColor)
		cv.Text(lbl, rp(halfLen+gap, y-lblSize/2), lblSize, g.textColor)
	}
}

// drawBankArc draws the fixed bank scale at the top of the gauge plus the
// two triangular pointers: a fixed sky pointer and one that rolls with the
// aircraft. The angle between them reads as current bank.
func (g *Gauge) drawBankArc(cv Canvas, center Vec2, r, roll float32) {
	arcR := 0.86 * r
	cv.Arc(center, arcR, -90-bankArcSweep, -90+bankArcSweep, 0.008*r, g.lineColor)

	for _, bank := range []float32{0, 10, 20, 30, 45, 60} {
		inner := 0.81 * r
		if bank == 0 || bank == 30 || bank == 60 {
			inner = 0.78 * r
		}
		for _, side := range []float32{-1, 1} {
			a := -90 + side*bank
			cv.Line(polar(center, a, inner), polar(center, a, arcR), 0.010*r, g.lineColor)
			if bank == 0 {
				break
			}
		}
	}

	// Fixed sky pointer: apex inward at the top of the arc.
	tip := 0.035 * r
	cv.FillTriangle(
		polar(center, -90, arcR-0.08*r),
		Vec2{center.X - tip, center.Y - arcR},
		Vec2{center.X + tip, center.Y - arcR},
		g.lineColor)

	// Aircraft pointer: rotates with roll, apex outward toward the fixed one.
	a := -90 - roll
	apex := polar(center, a, arcR-0.10*r)
	baseL := polar(center, a-3.2, arcR-0.18*r)
	baseR := polar(center, a+3.2, arcR-0.18*r)
	cv.FillTriangle(apex, baseL, baseR, g.accentColor)
}

// drawAircraftSymbol draws the fixed reference: wings, wingtip ticks and the
// center dot, always level regardless of attitude.
func (g *Gauge) drawAircraftSymbol(cv Canvas, center Vec2, r float32) {
	w := 0.045 * r
	inner := 0.16 * r
	outer := 0.42 * r
	tick := 0.07 * r

	for _, side := range []float32{-1, 1} {
		cv.Line(Vec2{center.X + side*inner, center.Y}, Vec2{center.X + side*outer, center.Y}, w, g.accentColor)
		cv.Line(Vec2{center.X + side*outer, center.Y}, Vec2{center.X + side*outer, center.Y + tick}, w, g.accentColor)
	}

	cv.FillCircle(center, 0.035*r, g.accentColor)
	cv.FillCircle(center, 0.014*r, g.faceColor)
}

// drawSlipIndicator draws the inclinometer tube below center and the ball.
// Slip outside -1..1 draws past the tube; the caller owns its inputs.
func (g *Gauge) drawSlipIndicator(cv Canvas, center Vec2, r, slip float32) {
	tubeC := Vec2{center.X, center.Y + slipTubeY*r}
	tubeW := 2 * slipTubeHalfW * r
	tubeH := 0.10 * r

	cv.FillRect(Vec2{tubeC.X - tubeW/2, tubeC.Y - tubeH/2}, tubeW, tubeH, g.tubeColor)

	// Static center reference marks, one ball-width apart.
	for _, side := range []float32{-1, 1} {
		x := tubeC.X + side*0.048*r
		cv.Line(Vec2{x, tubeC.Y - tubeH/2}, Vec2{x, tubeC.Y + tubeH/2}, 0.010*r, g.lineColor)
	}

	ball := Vec2{tubeC.X + slipOffsetPx(slip, r), tubeC.Y}
	cv.FillCircle(ball, 0.040*r, g.textColor)
	cv.StrokeCircle(ball, 0.040*r, 0.006*r, g.bezelDark)
}

// drawRose draws the compass field above center. The rose rotates opposite
// to heading so the current heading sits under the fixed top marker.
func (g *Gauge) drawRose(cv Canvas, center Vec2, r, heading float32) {
	hdg := normalizeHeading(heading)
	roseC := Vec2{center.X, center.Y - roseOffsetY*r}
	roseR := roseRadius * r

	cv.FillCircle(roseC, roseR, color.RGBA{0, 0, 0, 150})
	cv.StrokeCircle(roseC, roseR, 0.006*r, g.labelColor)

	lblSize := 0.085 * r
	for deg := 0; deg < 360; deg += 10 {
		a := float32(deg) - hdg - 90

		inner := roseR - 0.045*r
		if deg%30 == 0 {
			inner = roseR - 0.075*r
		}
		cv.Line(polar(roseC, a, inner), polar(roseC, a, roseR), 0.006*r, g.textColor)

		if deg%30 != 0 {
			continue
		}
		lbl := fmt.Sprintf("%d", deg/10)
		col := g.textColor
		switch deg {
		case 0:
			lbl, col = "N", g.northColor
		case 90:
			lbl = "E"
		case 180:
			lbl = "S"
		case 270:
			lbl = "W"
		}
		p := polar(roseC, a, roseR-0.135*r)
		cv.Text(lbl, Vec2{p.X - textAdvance(lbl, lblSize)/2, p.Y - lblSize/2}, lblSize, col)
	}

	// Fixed top marker: apex pointing down into the rose.
	tip := 0.03 * r
	cv.FillTriangle(
		Vec2{roseC.X, roseC.Y - roseR + tip},
		Vec2{roseC.X - tip, roseC.Y - roseR - tip},
		Vec2{roseC.X + tip, roseC.Y - roseR - tip},
		g.accentColor)

	// Heading-under-pointer readout below the rose.
	txt := fmt.Sprintf("%03d", int(hdg+0.5)%360)
	txtSize := 0.10 * r
	w := textAdvance(txt, txtSize) + 0.04*r
	box := Vec2{roseC.X - w/2, roseC.Y + roseR + 0.02*r}
	cv.FillRect(box, w, txtSize+0.03*r, g.tubeColor)
	cv.Text(txt, Vec2{roseC.X - textAdvance(txt, txtSize)/2, box.Y + 0.015*r}, txtSize, g.accentColor)
}

// drawReadouts draws the fixed-position digital fields. Values are rendered
// raw: no smoothing, no validation.
func (g *Gauge) drawReadouts(cv Canvas, center Vec2, r float32, in FlightState) {
	g.drawField(cv, "WPT", in.Waypoint, Vec2{center.X - 0.62*r, center.Y - 0.56*r}, r, g.wptColor)
	g.drawField(cv, "DIST", fmt.Sprintf("%.1f", in.Distance), Vec2{center.X - 0.62*r, center.Y - 0.36*r}, r, g.distColor)
	g.drawField(cv, "SALT", "0000", Vec2{center.X + 0.40*r, center.Y - 0.56*r}, r, g.saltColor)
	g.drawField(cv, "IAS", fmt.Sprintf("%d", roundInt(in.Airspeed)), Vec2{center.X - 0.80*r, center.Y - 0.08*r}, r, g.iasColor)
	g.drawField(cv, "ALT", fmt.Sprintf("%d", roundInt(in.Altitude)), Vec2{center.X + 0.48*r, center.Y - 0.08*r}, r, g.altColor)
	g.drawField(cv, "BARO", fmt.Sprintf("%.2f", in.BaroSetting), Vec2{center.X - 0.60*r, center.Y + 0.48*r}, r, g.baroColor)
}

// drawField pairs a small label with a larger value glyph below it.
func (g *Gauge) drawField(cv Canvas, label, value string, p Vec2, r float32, col color.RGBA) {
	cv.Text(label, p, 0.07*r, g.labelColor)
	cv.Text(value, Vec2{p.X, p.Y + 0.085*r}, 0.12*r, col)
}

// drawVSTape draws the vertical-speed scale on the right and its pointer.
// Only the pointer position clamps at ±2000 fpm.
func (g *Gauge) drawVSTape(cv Canvas, center Vec2, r, fpm float32) {
	x := center.X + 0.78*r
	span := vsTravel * r

	cv.Line(Vec2{x, center.Y - span}, Vec2{x, center.Y + span}, 0.008*r, g.lineColor)
	for i := -2; i <= 2; i++ {
		y := center.Y - float32(i)/2*span
		cv.Line(Vec2{x - 0.04*r, y}, Vec2{x, y}, 0.008*r, g.lineColor)
	}
	cv.Text("VS", Vec2{x - 0.05*r, center.Y - span - 0.10*r}, 0.07*r, g.labelColor)

	y := center.Y - vsPointerOffsetPx(fpm, r)
	cv.FillTriangle(
		Vec2{x, y},
		Vec2{x + 0.07*r, y - 0.035*r},
		Vec2{x + 0.07*r, y + 0.035*r},
		g.accentColor)
}

// drawBezel frames the gauge with two rings and the static panel text. None
// of this depends on any input.
func (g *Gauge) drawBezel(cv Canvas, center Vec2, half, size float32) {
	cv.StrokeCircle(center, half*0.985, half*0.05, g.bezelDark)
	cv.StrokeCircle(center, half*bezelFrac, half*0.02, g.bezelColor)

	lblSize := half * 0.07
	margin := size * 0.012
	cv.Text("AV-30", Vec2{margin, margin}, lblSize, g.textColor)
	cv.Text("AoA", Vec2{size - margin - textAdvance("AoA", lblSize), margin}, lblSize, g.labelColor)
	cv.Text("PUSH-SET", Vec2{margin, size - margin - lblSize}, lblSize, g.labelColor)
	cv.Text("MENU", Vec2{size - margin - textAdvance("MENU", lblSize), size - margin - lblSize}, lblSize, g.labelColor)

	g.drawBatteryIcon(cv, Vec2{center.X - half*0.14, size - margin - lblSize}, half)
	cv.Text("EXT PWR", Vec2{center.X - half*0.05, size - margin - lblSize}, lblSize, g.labelColor)
}

// drawBatteryIcon draws the small battery outline, tip and charge fill.
func (g *Gauge) drawBatteryIcon(cv Canvas, p Vec2, half float32) {
	w := half * 0.08
	h := half * 0.05
	cv.FillRect(p, w, h, g.bezelDark)
	cv.FillRect(Vec2{p.X + w, p.Y + h*0.25}, half*0.01, h*0.5, g.bezelDark)
	cv.FillRect(Vec2{p.X + half*0.005, p.Y + half*0.005}, w*0.8, h-half*0.01, g.accentColor)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}
