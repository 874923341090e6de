package colour

import (
	"math"

	"github.com/kpfaulkner/colourwheel/util"
)

// HSL is the bi-hexcone model over companded RGB. H is in degrees, S and L
// are nominally in [0, 1].
type HSL struct {
	h float64
	s float64
	l float64
}

func NewHSL(h float64, s float64, l float64) HSL {
	return HSL{h: h, s: s, l: l}
}

func NewHSLFromSlice(vals []float64) (HSL, error) {
	if err := checkDimension(MODEL_HSL, vals); err != nil {
		return HSL{}, err
	}
	return NewHSL(vals[0], vals[1], vals[2]), nil
}

func (c HSL) H() float64 { return c.h }
func (c HSL) S() float64 { return c.s }
func (c HSL) L() float64 { return c.l }

func (c HSL) Model() Model {
	return MODEL_HSL
}

// Components returns H, S, L.
func (c HSL) Components() []float64 {
	return []float64{c.h, c.s, c.l}
}

func (c HSL) Equal(other HSL) bool {
	return c.h == other.h && c.s == other.s && c.l == other.l
}

func (c HSL) Hash() uint64 {
	return hashColour(MODEL_HSL, c.Components(), nil)
}

func (c HSL) String() string {
	return formatColour("HSL", []string{"H", "S", "L"}, c.Components())
}

func (HSL) isColour() {}

func rgbToHSL(c RGB) HSL {
	min, max := util.MinMax3(c.r, c.g, c.b)
	chroma := max - min
	l := (max + min) / 2

	var s float64
	if d := 1 - math.Abs(2*l-1); chroma != 0 && d != 0 {
		s = chroma / d
	}
	return HSL{h: hue(c.r, c.g, c.b, max, chroma), s: s, l: l}
}

func hslToRGB(c HSL) RGB {
	chroma := (1 - math.Abs(2*c.l-1)) * c.s
	r, g, b := hueToRGB(c.h, chroma)
	m := c.l - chroma/2
	return RGB{r: r + m, g: g + m, b: b + m}
}
