package colour

import (
	"math"

	"github.com/kpfaulkner/colourwheel/util"
)

// Lab is a CIE 1976 L*a*b* value. L is nominally in [0, 100].
type Lab struct {
	l          float64
	a          float64
	b          float64
	whitePoint *Illuminant
}

func NewLab(l float64, a float64, b float64) Lab {
	return NewLabWithWhitePoint(l, a, b, nil)
}

func NewLabWithWhitePoint(l float64, a float64, b float64, wp *Illuminant) Lab {
	return Lab{l: l, a: a, b: b, whitePoint: whiteOrDefault(wp)}
}

func NewLabFromSlice(vals []float64, wp *Illuminant) (Lab, error) {
	if err := checkDimension(MODEL_LAB, vals); err != nil {
		return Lab{}, err
	}
	return NewLabWithWhitePoint(vals[0], vals[1], vals[2], wp), nil
}

func (c Lab) L() float64 { return c.l }
func (c Lab) A() float64 { return c.a }
func (c Lab) B() float64 { return c.b }

func (c Lab) WhitePoint() *Illuminant {
	return whiteOrDefault(c.whitePoint)
}

func (c Lab) Model() Model {
	return MODEL_LAB
}

// Components returns L, a, b.
func (c Lab) Components() []float64 {
	return []float64{c.l, c.a, c.b}
}

func (c Lab) Equal(other Lab) bool {
	return c.l == other.l && c.a == other.a && c.b == other.b && c.WhitePoint().Matches(other.WhitePoint())
}

func (c Lab) Hash() uint64 {
	return hashColour(MODEL_LAB, c.Components(), c.WhitePoint())
}

func (c Lab) String() string {
	return formatColour("Lab", []string{"L", "a", "b"}, c.Components())
}

func (Lab) isColour() {}

func labF(t float64) float64 {
	if t > CIE_EPSILON {
		return util.Cbrt(t)
	}
	return (CIE_KAPPA*t + 16) / 116
}

func labFInverse(f float64) float64 {
	f3 := f * f * f
	if f3 > CIE_EPSILON {
		return f3
	}
	return (116*f - 16) / CIE_KAPPA
}

func xyzToLab(c XYZ) Lab {
	wp := c.WhitePoint()
	fx := labF(c.x / wp.X)
	fy := labF(c.y / wp.Y)
	fz := labF(c.z / wp.Z)

	return Lab{
		l:          116*fy - 16,
		a:          500 * (fx - fy),
		b:          200 * (fy - fz),
		whitePoint: wp,
	}
}

func labToXYZ(c Lab) XYZ {
	wp := c.WhitePoint()
	fy := (c.l + 16) / 116
	fx := fy + c.a/500
	fz := fy - c.b/200

	var yr float64
	if c.l > CIE_KAPPA*CIE_EPSILON {
		yr = fy * fy * fy
	} else {
		yr = c.l / CIE_KAPPA
	}

	return XYZ{
		x:          labFInverse(fx) * wp.X,
		y:          yr * wp.Y,
		z:          labFInverse(fz) * wp.Z,
		whitePoint: wp,
	}
}

// Chroma is the distance from the neutral axis in the a*b* plane.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.a, c.b)
}

// Hue is the angle of (a*, b*) in degrees, in [0, 360).
func (c Lab) Hue() float64 {
	if c.a == 0 && c.b == 0 {
		return 0
	}
	return util.Wrap(math.Atan2(c.b, c.a)*180/math.Pi, 360)
}
