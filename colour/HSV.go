package colour

import (
	"math"

	"github.com/kpfaulkner/colourwheel/util"
)

// HSV is the hexcone model over companded RGB. H is in degrees, S and V
// are nominally in [0, 1].
type HSV struct {
	h float64
	s float64
	v float64
}

func NewHSV(h float64, s float64, v float64) HSV {
	return HSV{h: h, s: s, v: v}
}

func NewHSVFromSlice(vals []float64) (HSV, error) {
	if err := checkDimension(MODEL_HSV, vals); err != nil {
		return HSV{}, err
	}
	return NewHSV(vals[0], vals[1], vals[2]), nil
}

func (c HSV) H() float64 { return c.h }
func (c HSV) S() float64 { return c.s }
func (c HSV) V() float64 { return c.v }

func (c HSV) Model() Model {
	return MODEL_HSV
}

// Components returns H, S, V.
func (c HSV) Components() []float64 {
	return []float64{c.h, c.s, c.v}
}

func (c HSV) Equal(other HSV) bool {
	return c.h == other.h && c.s == other.s && c.v == other.v
}

func (c HSV) Hash() uint64 {
	return hashColour(MODEL_HSV, c.Components(), nil)
}

func (c HSV) String() string {
	return formatColour("HSV", []string{"H", "S", "V"}, c.Components())
}

func (HSV) isColour() {}

// hue returns degrees in [0, 360), 0 for achromatic input.
func hue(r float64, g float64, b float64, max float64, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / chroma
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	return util.Wrap(h*60, 360)
}

// hueToRGB places a chroma on the hexcone for hue h in degrees.
func hueToRGB(h float64, chroma float64) (float64, float64, float64) {
	hp := util.Wrap(h, 360) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch int(hp) {
	case 0:
		return chroma, x, 0
	case 1:
		return x, chroma, 0
	case 2:
		return 0, chroma, x
	case 3:
		return 0, x, chroma
	case 4:
		return x, 0, chroma
	}
	return chroma, 0, x
}

func rgbToHSV(c RGB) HSV {
	min, max := util.MinMax3(c.r, c.g, c.b)
	chroma := max - min

	var s float64
	if max != 0 {
		s = chroma / max
	}
	return HSV{h: hue(c.r, c.g, c.b, max, chroma), s: s, v: max}
}

func hsvToRGB(c HSV) RGB {
	chroma := c.v * c.s
	r, g, b := hueToRGB(c.h, chroma)
	m := c.v - chroma
	return RGB{r: r + m, g: g + m, b: b + m}
}
