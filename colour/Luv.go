package colour

import (
	"math"

	"github.com/kpfaulkner/colourwheel/util"
)

const (
	// CIE_EPSILON is (6/29)^3, where the lightness curve switches from the
	// cube root to its linear toe.
	CIE_EPSILON = 216.0 / 24389.0

	// CIE_KAPPA is (29/3)^3, the slope of the linear toe.
	CIE_KAPPA = 24389.0 / 27.0
)

// Luv is a CIE 1976 L*u*v* value. L is nominally in [0, 100].
type Luv struct {
	l          float64
	u          float64
	v          float64
	whitePoint *Illuminant
}

func NewLuv(l float64, u float64, v float64) Luv {
	return NewLuvWithWhitePoint(l, u, v, nil)
}

func NewLuvWithWhitePoint(l float64, u float64, v float64, wp *Illuminant) Luv {
	return Luv{l: l, u: u, v: v, whitePoint: whiteOrDefault(wp)}
}

// NewLuvFromSlice reads L, u, v from the first three elements.
func NewLuvFromSlice(vals []float64, wp *Illuminant) (Luv, error) {
	if err := checkDimension(MODEL_LUV, vals); err != nil {
		return Luv{}, err
	}
	return NewLuvWithWhitePoint(vals[0], vals[1], vals[2], wp), nil
}

func (c Luv) L() float64 { return c.l }
func (c Luv) U() float64 { return c.u }
func (c Luv) V() float64 { return c.v }

func (c Luv) WhitePoint() *Illuminant {
	return whiteOrDefault(c.whitePoint)
}

func (c Luv) Model() Model {
	return MODEL_LUV
}

// Components returns L, u, v.
func (c Luv) Components() []float64 {
	return []float64{c.l, c.u, c.v}
}

func (c Luv) Equal(other Luv) bool {
	return c.l == other.l && c.u == other.u && c.v == other.v && c.WhitePoint().Matches(other.WhitePoint())
}

func (c Luv) Hash() uint64 {
	return hashColour(MODEL_LUV, c.Components(), c.WhitePoint())
}

func (c Luv) String() string {
	return formatColour("Luv", []string{"L", "u", "v"}, c.Components())
}

func (Luv) isColour() {}

// uvPrime gives the CIE 1976 UCS chromaticity. A zero denominator maps to
// the origin.
func uvPrime(x float64, y float64, z float64) (float64, float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// xyzToLuv uses the white point of the XYZ value. No adaptation happens
// here.
func xyzToLuv(c XYZ) Luv {
	wp := c.WhitePoint()
	if c.y == 0 {
		return Luv{whitePoint: wp}
	}

	yr := c.y / wp.Y
	var l float64
	if yr > CIE_EPSILON {
		l = 116*util.Cbrt(yr) - 16
	} else {
		l = CIE_KAPPA * yr
	}

	up, vp := uvPrime(c.x, c.y, c.z)
	upw, vpw := uvPrime(wp.X, wp.Y, wp.Z)
	return Luv{
		l:          l,
		u:          13 * l * (up - upw),
		v:          13 * l * (vp - vpw),
		whitePoint: wp,
	}
}

func luvToXYZ(c Luv) XYZ {
	wp := c.WhitePoint()
	if c.l == 0 {
		return XYZ{whitePoint: wp}
	}

	var y float64
	if c.l > CIE_KAPPA*CIE_EPSILON {
		fy := (c.l + 16) / 116
		y = fy * fy * fy
	} else {
		y = c.l / CIE_KAPPA
	}
	y *= wp.Y

	upw, vpw := uvPrime(wp.X, wp.Y, wp.Z)
	up := c.u/(13*c.l) + upw
	vp := c.v/(13*c.l) + vpw
	if vp == 0 {
		return XYZ{y: y, whitePoint: wp}
	}

	return XYZ{
		x:          y * 9 * up / (4 * vp),
		y:          y,
		z:          y * (12 - 3*up - 20*vp) / (4 * vp),
		whitePoint: wp,
	}
}

// Chroma is the distance from the neutral axis in the u*v* plane.
func (c Luv) Chroma() float64 {
	return math.Hypot(c.u, c.v)
}

// Hue is the angle of (u*, v*) in degrees, in [0, 360). Neutral colours
// have hue 0.
func (c Luv) Hue() float64 {
	if c.u == 0 && c.v == 0 {
		return 0
	}
	return util.Wrap(math.Atan2(c.v, c.u)*180/math.Pi, 360)
}
