package colour

import (
	"github.com/kpfaulkner/colourwheel/util"
)

// CMYK is naive subtractive process colour derived from RGB, with no ink
// profile. All four components are nominally in [0, 1]. Four components
// describe three degrees of freedom, so only the maximum black form that
// rgbToCMYK produces survives a round trip through another model.
type CMYK struct {
	c float64
	m float64
	y float64
	k float64
}

func NewCMYK(c float64, m float64, y float64, k float64) CMYK {
	return CMYK{c: c, m: m, y: y, k: k}
}

// NewCMYKFromSlice needs four elements.
func NewCMYKFromSlice(vals []float64) (CMYK, error) {
	if err := checkDimension(MODEL_CMYK, vals); err != nil {
		return CMYK{}, err
	}
	return NewCMYK(vals[0], vals[1], vals[2], vals[3]), nil
}

func (c CMYK) C() float64 { return c.c }
func (c CMYK) M() float64 { return c.m }
func (c CMYK) Y() float64 { return c.y }
func (c CMYK) K() float64 { return c.k }

func (c CMYK) Model() Model {
	return MODEL_CMYK
}

// Components returns C, M, Y, K.
func (c CMYK) Components() []float64 {
	return []float64{c.c, c.m, c.y, c.k}
}

func (c CMYK) Equal(other CMYK) bool {
	return c.c == other.c && c.m == other.m && c.y == other.y && c.k == other.k
}

func (c CMYK) Hash() uint64 {
	return hashColour(MODEL_CMYK, c.Components(), nil)
}

func (c CMYK) String() string {
	return formatColour("CMYK", []string{"C", "M", "Y", "K"}, c.Components())
}

func (CMYK) isColour() {}

// rgbToCMYK takes as much black as possible. Pure black has no colour ink.
func rgbToCMYK(c RGB) CMYK {
	_, hi := util.MinMax3(c.r, c.g, c.b)
	k := 1 - hi
	if k == 1 {
		return CMYK{k: 1}
	}
	return CMYK{
		c: (1 - c.r - k) / (1 - k),
		m: (1 - c.g - k) / (1 - k),
		y: (1 - c.b - k) / (1 - k),
		k: k,
	}
}

func cmykToRGB(c CMYK) RGB {
	return RGB{
		r: (1 - c.c) * (1 - c.k),
		g: (1 - c.m) * (1 - c.k),
		b: (1 - c.y) * (1 - c.k),
	}
}
