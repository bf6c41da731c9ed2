package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSize = 400 // half 200, R = 184

func renderGauge(sm SmoothedState, in FlightState) *Recorder {
	rec := &Recorder{}
	NewGauge().Draw(rec, sm, in, testSize)
	return rec
}

func TestGaugeNilCanvasIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewGauge().Draw(nil, SmoothedState{}, FlightState{}, testSize)
	})
}

func TestGaugeIdempotent(t *testing.T) {
	sm := SmoothedState{Pitch: 3.5, Roll: -12, Heading: 271, Slip: 0.3}
	in := FlightState{Airspeed: 104, Altitude: 6420, VerticalSpeed: -350,
		BaroSetting: 30.12, Waypoint: "KAPA", Distance: 12.4}

	a := renderGauge(sm, in)
	b := renderGauge(sm, in)

	require.Equal(t, a.Cmds, b.Cmds, "same inputs must record the same command stream")
}

func TestGaugeClipBalanced(t *testing.T) {
	rec := renderGauge(SmoothedState{Pitch: 10, Roll: 45}, FlightState{})
	assert.Zero(t, rec.ClipDepth())

	pushes := rec.Find(CmdPushClipCircle)
	require.Len(t, pushes, 1)
	assert.InDelta(t, horizonClip*184, pushes[0].R, 1e-3, "horizon clips to the inner circle")
}

func TestGaugeLevelHorizonIsCentered(t *testing.T) {
	rec := renderGauge(SmoothedState{}, FlightState{Airspeed: 100, Altitude: 1000, Waypoint: "KDEN"})

	lines := rec.Find(CmdLine)
	require.NotEmpty(t, lines)

	// The horizon line is the first line drawn, right after the sky and
	// ground quads.
	h := lines[0]
	assert.InDelta(t, 200, h.Pts[0].Y, 1e-3)
	assert.InDelta(t, 200, h.Pts[1].Y, 1e-3)

	assert.NotEmpty(t, rec.FindText("100"), "airspeed readout")
	assert.NotEmpty(t, rec.FindText("1000"), "altitude readout")
	assert.NotEmpty(t, rec.FindText("KDEN"))
	assert.NotEmpty(t, rec.FindText("000"), "heading readout at north")
}

func TestGaugeHorizonPitchOffset(t *testing.T) {
	// Nose up moves the horizon line down: +30° is exactly one radius.
	rec := renderGauge(SmoothedState{Pitch: 30}, FlightState{})
	h := rec.Find(CmdLine)[0]
	assert.InDelta(t, 200+184, h.Pts[0].Y, 1e-2)
	assert.InDelta(t, 200+184, h.Pts[1].Y, 1e-2)

	rec = renderGauge(SmoothedState{Pitch: -30}, FlightState{})
	h = rec.Find(CmdLine)[0]
	assert.InDelta(t, 200-184, h.Pts[0].Y, 1e-2)
	assert.InDelta(t, 200-184, h.Pts[1].Y, 1e-2)
}

func TestGaugeHorizonRollsOppositeBank(t *testing.T) {
	// Banking right tilts the horizon left: the right endpoint rises.
	rec := renderGauge(SmoothedState{Roll: 30}, FlightState{})
	h := rec.Find(CmdLine)[0]

	var left, right Vec2 = h.Pts[0], h.Pts[1]
	if left.X > right.X {
		left, right = right, left
	}
	assert.Less(t, right.Y, float32(200))
	assert.Greater(t, left.Y, float32(200))
}

func TestGaugePitchOffsetPx(t *testing.T) {
	assert.InDelta(t, 184, pitchOffsetPx(30, 184), 1e-4)
	assert.InDelta(t, -184, pitchOffsetPx(-30, 184), 1e-4)
	assert.InDelta(t, 0, pitchOffsetPx(0, 184), 1e-4)
	assert.InDelta(t, 184.0/3, pitchOffsetPx(10, 184), 1e-3)
}

// findSlipBall picks the ball out of the recording by its radius and row.
func findSlipBall(t *testing.T, rec *Recorder) Command {
	t.Helper()
	ballR := float32(0.040 * 184)
	ballY := float32(200 + slipTubeY*184)
	for _, c := range rec.Find(CmdFillCircle) {
		if abs32(c.R-ballR) < 1e-3 && abs32(c.Pts[0].Y-ballY) < 1e-3 {
			return c
		}
	}
	t.Fatal("slip ball not found in recording")
	return Command{}
}

func TestGaugeSlipBallTravel(t *testing.T) {
	tests := []struct {
		slip  float32
		wantX float32
	}{
		{0, 200},
		{1, 200 + slipTravel*184},
		{-1, 200 - slipTravel*184},
		{0.5, 200 + 0.5*slipTravel*184},
	}
	for _, tt := range tests {
		rec := renderGauge(SmoothedState{Slip: tt.slip}, FlightState{})
		ball := findSlipBall(t, rec)
		assert.InDelta(t, tt.wantX, ball.Pts[0].X, 1e-3, "slip %v", tt.slip)
	}
}

func TestGaugeVSPointerClamps(t *testing.T) {
	// Beyond full scale the pointer pegs: the whole frame is identical.
	over := renderGauge(SmoothedState{}, FlightState{VerticalSpeed: 3000})
	full := renderGauge(SmoothedState{}, FlightState{VerticalSpeed: 2000})
	assert.Equal(t, full.Cmds, over.Cmds)

	under := renderGauge(SmoothedState{}, FlightState{VerticalSpeed: -5000})
	floor := renderGauge(SmoothedState{}, FlightState{VerticalSpeed: -2000})
	assert.Equal(t, floor.Cmds, under.Cmds)
}

func TestGaugeVSPointerPosition(t *testing.T) {
	rec := renderGauge(SmoothedState{}, FlightState{VerticalSpeed: 1000})

	// The pointer is the last triangle of the frame; its apex sits halfway
	// up the tape for +1000 fpm.
	tris := rec.Find(CmdFillTriangle)
	require.NotEmpty(t, tris)
	apex := tris[len(tris)-1].Pts[0]
	assert.InDelta(t, 200+0.78*184, apex.X, 1e-3)
	assert.InDelta(t, 200-0.5*vsTravel*184, apex.Y, 1e-3)
}

func TestGaugeVSPointerOffsetPx(t *testing.T) {
	assert.InDelta(t, vsTravel*184, vsPointerOffsetPx(2000, 184), 1e-3)
	assert.InDelta(t, vsTravel*184, vsPointerOffsetPx(9999, 184), 1e-3)
	assert.InDelta(t, -vsTravel*184, vsPointerOffsetPx(-9999, 184), 1e-3)
	assert.InDelta(t, 0, vsPointerOffsetPx(0, 184), 1e-3)
}

func TestGaugeRoseNorthUnderPointerAtZeroHeading(t *testing.T) {
	rec := renderGauge(SmoothedState{Heading: 0}, FlightState{})

	ns := rec.FindText("N")
	require.Len(t, ns, 1)
	lblSize := float32(0.085 * 184)
	centerX := ns[0].Pts[0].X + textAdvance("N", lblSize)/2
	assert.InDelta(t, 200, centerX, 1e-2, "N sits on the rose centerline at heading 000")
	assert.Less(t, ns[0].Pts[0].Y, float32(200-roseOffsetY*184), "N sits above the rose center")
}

func TestGaugeHeadingReadoutWraps(t *testing.T) {
	rec := renderGauge(SmoothedState{Heading: 359.8}, FlightState{})
	assert.NotEmpty(t, rec.FindText("000"))

	// Accumulated heading past a full turn still reads mod 360.
	rec = renderGauge(SmoothedState{Heading: 370}, FlightState{})
	assert.NotEmpty(t, rec.FindText("010"))

	rec = renderGauge(SmoothedState{Heading: 90}, FlightState{})
	assert.NotEmpty(t, rec.FindText("090"))
}

func TestGaugeStaticPanelText(t *testing.T) {
	rec := renderGauge(SmoothedState{}, FlightState{})
	for _, s := range []string{"AV-30", "AoA", "PUSH-SET", "MENU", "EXT PWR", "VS", "SALT", "0000"} {
		assert.NotEmpty(t, rec.FindText(s), "missing static label %q", s)
	}
}

func TestGaugeReadoutFormats(t *testing.T) {
	rec := renderGauge(SmoothedState{}, FlightState{
		Airspeed: 104.6, Altitude: 6420.2, BaroSetting: 29.92,
		Distance: 12.43, Waypoint: "KAPA",
	})
	assert.NotEmpty(t, rec.FindText("105"), "airspeed rounds to whole knots")
	assert.NotEmpty(t, rec.FindText("6420"))
	assert.NotEmpty(t, rec.FindText("29.92"))
	assert.NotEmpty(t, rec.FindText("12.4"), "distance shows one decimal")
	assert.NotEmpty(t, rec.FindText("KAPA"))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
