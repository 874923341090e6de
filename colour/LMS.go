package colour

import (
	"github.com/kpfaulkner/colourwheel/util"
)

// LMS is a long, medium, short cone response. The cone fundamentals come
// from the Hunt-Pointer-Estevez matrix normalised to illuminant E. The
// white point is that of the XYZ value the response was computed from and
// is carried so the way back lands on the same white.
type LMS struct {
	l          float64
	m          float64
	s          float64
	whitePoint *Illuminant
}

var (
	// HPE maps XYZ to LMS.
	HPE = util.Matrix3[float64]{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0.0, 0.0, 1.0},
	}

	HPE_INVERSE = HPE.MustInvert()
)

func NewLMS(l float64, m float64, s float64) LMS {
	return NewLMSWithWhitePoint(l, m, s, nil)
}

func NewLMSWithWhitePoint(l float64, m float64, s float64, wp *Illuminant) LMS {
	return LMS{l: l, m: m, s: s, whitePoint: whiteOrDefault(wp)}
}

func NewLMSFromSlice(vals []float64, wp *Illuminant) (LMS, error) {
	if err := checkDimension(MODEL_LMS, vals); err != nil {
		return LMS{}, err
	}
	return NewLMSWithWhitePoint(vals[0], vals[1], vals[2], wp), nil
}

func (c LMS) L() float64 { return c.l }
func (c LMS) M() float64 { return c.m }
func (c LMS) S() float64 { return c.s }

func (c LMS) WhitePoint() *Illuminant {
	return whiteOrDefault(c.whitePoint)
}

func (c LMS) Model() Model {
	return MODEL_LMS
}

// Components returns L, M, S.
func (c LMS) Components() []float64 {
	return []float64{c.l, c.m, c.s}
}

func (c LMS) Equal(other LMS) bool {
	return c.l == other.l && c.m == other.m && c.s == other.s && c.WhitePoint().Matches(other.WhitePoint())
}

func (c LMS) Hash() uint64 {
	return hashColour(MODEL_LMS, c.Components(), c.WhitePoint())
}

func (c LMS) String() string {
	return formatColour("LMS", []string{"L", "M", "S"}, c.Components())
}

func (LMS) isColour() {}

func xyzToLMS(c XYZ) LMS {
	v := HPE.MulVec(util.Vector3[float64]{c.x, c.y, c.z})
	return LMS{l: v[0], m: v[1], s: v[2], whitePoint: c.WhitePoint()}
}

func lmsToXYZ(c LMS) XYZ {
	v := HPE_INVERSE.MulVec(util.Vector3[float64]{c.l, c.m, c.s})
	return XYZ{x: v[0], y: v[1], z: v[2], whitePoint: c.WhitePoint()}
}
