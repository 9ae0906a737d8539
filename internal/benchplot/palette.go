package benchplot

import (
	"fmt"
	"image/color"
)

// presetPalette is the fixed palette used when five or fewer collections
// are plotted, in collection order.
var presetPalette = []color.Color{
	color.RGBA{R: 128, G: 128, B: 128, A: 255}, // grey
	color.RGBA{R: 255, A: 255},                 // red
	color.RGBA{G: 128, A: 255},                 // green
	color.RGBA{B: 255, A: 255},                 // blue
	color.RGBA{A: 255},                         // black
}

// collectionColors returns one color per collection: the preset palette for
// up to five collections, otherwise n evenly spaced hues sampled from a
// continuous HSL sweep so every collection stays distinguishable.
func collectionColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	if n <= len(presetPalette) {
		return presetPalette[:n]
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// hexColor renders a color as "#rrggbb" for the HTML backend.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
