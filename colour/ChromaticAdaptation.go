package colour

import (
	"strings"

	"github.com/kpfaulkner/colourwheel/util"
	"github.com/pkg/errors"
)

// AdaptationMethod selects the cone space a von Kries style adaptation is
// performed in.
type AdaptationMethod int32

const (
	ADAPT_BRADFORD AdaptationMethod = iota
	ADAPT_VON_KRIES
	ADAPT_XYZ_SCALING
	ADAPT_CAT02
)

var (
	BRADFORD = util.Matrix3[float64]{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	BRADFORD_INVERSE = BRADFORD.MustInvert()

	// CAT02 is the CIECAM02 adaptation matrix.
	CAT02 = util.Matrix3[float64]{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}

	CAT02_INVERSE = CAT02.MustInvert()
)

func (m AdaptationMethod) String() string {
	switch m {
	case ADAPT_BRADFORD:
		return "Bradford"
	case ADAPT_VON_KRIES:
		return "VonKries"
	case ADAPT_XYZ_SCALING:
		return "XYZScaling"
	case ADAPT_CAT02:
		return "CAT02"
	}
	return "Unknown"
}

// ParseAdaptationMethod accepts the String form, ignoring case.
func ParseAdaptationMethod(name string) (AdaptationMethod, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range []AdaptationMethod{ADAPT_BRADFORD, ADAPT_VON_KRIES, ADAPT_XYZ_SCALING, ADAPT_CAT02} {
		if strings.ToLower(m.String()) == n {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAdaptation, "%q", name)
}

// coneMatrices returns the cone response matrix and its inverse.
func (m AdaptationMethod) coneMatrices() (util.Matrix3[float64], util.Matrix3[float64]) {
	switch m {
	case ADAPT_VON_KRIES:
		return HPE, HPE_INVERSE
	case ADAPT_XYZ_SCALING:
		return util.Identity3[float64](), util.Identity3[float64]()
	case ADAPT_CAT02:
		return CAT02, CAT02_INVERSE
	}
	return BRADFORD, BRADFORD_INVERSE
}

// AdaptWhitePoint returns the matrix taking XYZ relative to currentWP to
// XYZ relative to targetWP. Nil white points mean DEFAULT_WHITE_POINT.
// Matching white points give the identity.
func AdaptWhitePoint(targetWP *Illuminant, currentWP *Illuminant, method AdaptationMethod) util.Matrix3[float64] {
	targetWP = whiteOrDefault(targetWP)
	currentWP = whiteOrDefault(currentWP)
	if targetWP.Matches(currentWP) {
		return util.Identity3[float64]()
	}

	cone, coneInverse := method.coneMatrices()
	src := cone.MulVec(util.Vector3[float64]{currentWP.X, currentWP.Y, currentWP.Z})
	dst := cone.MulVec(util.Vector3[float64]{targetWP.X, targetWP.Y, targetWP.Z})
	scale := util.Diagonal3(util.Vector3[float64]{dst[0] / src[0], dst[1] / src[1], dst[2] / src[2]})

	return util.MatrixMultiply(coneInverse, scale, cone)
}

// AdaptXYZ re-expresses c relative to targetWP. The value is returned
// untouched when the white points already match.
func AdaptXYZ(c XYZ, targetWP *Illuminant, method AdaptationMethod) XYZ {
	targetWP = whiteOrDefault(targetWP)
	if c.WhitePoint().Matches(targetWP) {
		return c
	}
	v := AdaptWhitePoint(targetWP, c.WhitePoint(), method).MulVec(util.Vector3[float64]{c.x, c.y, c.z})
	return XYZ{x: v[0], y: v[1], z: v[2], whitePoint: targetWP}
}
