package main

import "math"

// Float32 trig/angle helpers. Everything on screen is float32, so these save
// the casts that the math package would otherwise force everywhere.

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }

func radians(deg float32) float32 { return deg * math.Pi / 180 }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func clamp32(x, low, high float32) float32 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// normalizeHeading reduces a heading to [0,360).
func normalizeHeading(h float32) float32 {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}

// headingDelta returns the signed shortest-path difference target−current,
// normalized into (-180, 180]. Neither argument needs to be pre-wrapped.
func headingDelta(current, target float32) float32 {
	d := float32(math.Mod(float64(target-current), 360))
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// rotatePoint rotates (px,py) around (cx,cy) by angle radians.
func rotatePoint(px, py, cx, cy, angle float32) (float32, float32) {
	c := cos32(angle)
	s := sin32(angle)

	px -= cx
	py -= cy

	return px*c - py*s + cx, px*s + py*c + cy
}
