package colour

import (
	"github.com/kpfaulkner/colourwheel/util"
	"github.com/pkg/errors"
)

// CIEPrimaries are the chromaticities of an RGB device's red, green and
// blue.
type CIEPrimaries struct {
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
}

func NewCIEPrimaries(red CIEXY, green CIEXY, blue CIEXY) CIEPrimaries {
	return CIEPrimaries{Red: red, Green: green, Blue: blue}
}

func (cp CIEPrimaries) Matches(other CIEPrimaries) bool {
	return cp.Red.Matches(other.Red) && cp.Green.Matches(other.Green) && cp.Blue.Matches(other.Blue)
}

func validateXY(xy CIEXY) error {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return errors.Errorf("chromaticity %v out of range", xy)
	}
	return nil
}

// primariesToXYZ builds the normalised primary matrix: linear RGB (1,1,1)
// lands exactly on the white point.
func primariesToXYZ(primaries CIEPrimaries, wp *Illuminant) (util.Matrix3[float64], error) {
	for _, xy := range []CIEXY{primaries.Red, primaries.Green, primaries.Blue} {
		if err := validateXY(xy); err != nil {
			return util.Matrix3[float64]{}, err
		}
	}
	if err := ValidateIlluminant(wp); err != nil {
		return util.Matrix3[float64]{}, err
	}

	rx, ry, rz := primaries.Red.ToXYZ(1)
	gx, gy, gz := primaries.Green.ToXYZ(1)
	bx, by, bz := primaries.Blue.ToXYZ(1)

	// one primary per column
	primariesMatrix := util.Matrix3[float64]{
		{rx, gx, bx},
		{ry, gy, by},
		{rz, gz, bz},
	}
	inversePrimaries, err := primariesMatrix.Invert()
	if err != nil {
		return util.Matrix3[float64]{}, errors.Wrap(err, "primaries are collinear")
	}

	s := inversePrimaries.MulVec(util.Vector3[float64]{wp.X, wp.Y, wp.Z})
	return primariesMatrix.Mul(util.Diagonal3(s)), nil
}
