package sparkle

import (
	"fmt"
	"math"
)

// Fill colors, disc centre to disc edge.
var (
	centreColor = [3]float64{124, 58, 237} // #7c3aed
	edgeColor   = [3]float64{79, 70, 229}  // #4f46e5
)

// Field renders a size×size RGBA raster: a purple-to-indigo gradient disc
// carrying a white four-lobed sparkle, fully transparent outside the disc.
// Rows run top to bottom, pixels left to right, 4 bytes per pixel. The
// result depends on size alone; identical sizes yield identical bytes.
func Field(size int) ([][]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", size)
	}

	half := float64(size) / 2
	radius := half * 0.9

	rows := make([][]byte, size)
	for y := 0; y < size; y++ {
		row := make([]byte, 0, size*4)
		for x := 0; x < size; x++ {
			// Offsets sample pixel centres, not corners.
			px := shade(float64(x)-half+0.5, float64(y)-half+0.5, radius)
			row = append(row, px[:]...)
		}
		rows[y] = row
	}

	return rows, nil
}

func shade(dx, dy, radius float64) [4]byte {
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > radius {
		return [4]byte{}
	}

	if inSparkle(dx, dy, radius) {
		return [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	}

	// Interpolation truncates toward zero; rounding would shift reference
	// output bytes.
	t := dist / radius
	var px [4]byte
	for i := 0; i < 3; i++ {
		px[i] = uint8(centreColor[i] + (edgeColor[i]-centreColor[i])*t)
	}
	px[3] = 0xFF

	return px
}

// inSparkle reports whether the offset falls in one of the four glyph
// lobes: a vertical bar, a horizontal bar, or the two thinner 45° bars.
func inSparkle(dx, dy, radius float64) bool {
	lobeW := radius * 0.22
	lobeH := radius * 0.55

	ax, ay := math.Abs(dx), math.Abs(dy)
	if (ax < lobeW && ay < lobeH) || (ay < lobeW && ax < lobeH) {
		return true
	}

	diagW := lobeW * 0.6
	diagH := lobeH * 0.45
	rot1 := math.Abs(dx+dy) / math.Sqrt2
	rot2 := math.Abs(dx-dy) / math.Sqrt2

	return (rot1 < diagW && rot2 < diagH) || (rot2 < diagW && rot1 < diagH)
}
