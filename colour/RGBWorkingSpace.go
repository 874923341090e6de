package colour

import (
	"strings"

	"github.com/kpfaulkner/colourwheel/util"
	"github.com/pkg/errors"
)

// RGBWorkingSpace ties RGB values to primaries, a reference white and a
// transfer curve. The RGB to XYZ matrix is derived once at construction.
type RGBWorkingSpace struct {
	Name      string
	Primaries CIEPrimaries
	White     *Illuminant
	Compander Compander

	toXYZ   util.Matrix3[float64]
	fromXYZ util.Matrix3[float64]
}

var (
	PRI_SRGB = NewCIEPrimaries(NewCIEXY(0.64, 0.33), NewCIEXY(0.30, 0.60), NewCIEXY(0.15, 0.06))

	PRI_ADOBE_RGB = NewCIEPrimaries(NewCIEXY(0.64, 0.33), NewCIEXY(0.21, 0.71), NewCIEXY(0.15, 0.06))

	PRI_PROPHOTO_RGB = NewCIEPrimaries(NewCIEXY(0.7347, 0.2653), NewCIEXY(0.1596, 0.8404), NewCIEXY(0.0366, 0.0001))

	// WS_SRGB is the default working space.
	WS_SRGB = mustWorkingSpace("sRGB", PRI_SRGB, WP_D65, SRGBCompander{})

	WS_LINEAR_SRGB = mustWorkingSpace("LinearSRGB", PRI_SRGB, WP_D65, LinearCompander{})

	// WS_ADOBE_RGB is Adobe RGB (1998), gamma 563/256.
	WS_ADOBE_RGB = mustWorkingSpace("AdobeRGB", PRI_ADOBE_RGB, WP_D65, GammaCompander{Gamma: 563.0 / 256.0})

	WS_PROPHOTO_RGB = mustWorkingSpace("ProPhotoRGB", PRI_PROPHOTO_RGB, WP_D50, ROMMCompander{})

	workingSpaces = []*RGBWorkingSpace{WS_SRGB, WS_LINEAR_SRGB, WS_ADOBE_RGB, WS_PROPHOTO_RGB}
)

func NewRGBWorkingSpace(name string, primaries CIEPrimaries, wp *Illuminant, compander Compander) (*RGBWorkingSpace, error) {
	if compander == nil {
		compander = LinearCompander{}
	}
	toXYZ, err := primariesToXYZ(primaries, wp)
	if err != nil {
		return nil, errors.Wrapf(err, "working space %s", name)
	}
	fromXYZ, err := toXYZ.Invert()
	if err != nil {
		return nil, errors.Wrapf(err, "working space %s", name)
	}

	return &RGBWorkingSpace{
		Name:      name,
		Primaries: primaries,
		White:     wp,
		Compander: compander,
		toXYZ:     toXYZ,
		fromXYZ:   fromXYZ,
	}, nil
}

func mustWorkingSpace(name string, primaries CIEPrimaries, wp *Illuminant, compander Compander) *RGBWorkingSpace {
	ws, err := NewRGBWorkingSpace(name, primaries, wp, compander)
	if err != nil {
		panic(err)
	}
	return ws
}

// WorkingSpaceByName looks up a built in working space, ignoring case.
func WorkingSpaceByName(name string) (*RGBWorkingSpace, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, ws := range workingSpaces {
		if strings.ToLower(ws.Name) == n {
			return ws, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownWorkingSpace, "%q", name)
}

// ToXYZMatrix maps linear RGB to XYZ relative to the space's white.
func (ws *RGBWorkingSpace) ToXYZMatrix() util.Matrix3[float64] {
	return ws.toXYZ
}

func (ws *RGBWorkingSpace) FromXYZMatrix() util.Matrix3[float64] {
	return ws.fromXYZ
}

// rgbToXYZ linearises then applies the primary matrix. The result is
// relative to the working space white.
func (ws *RGBWorkingSpace) rgbToXYZ(c RGB) XYZ {
	linear := util.Vector3[float64]{
		ws.Compander.Linearise(c.r),
		ws.Compander.Linearise(c.g),
		ws.Compander.Linearise(c.b),
	}
	v := ws.toXYZ.MulVec(linear)
	return XYZ{x: v[0], y: v[1], z: v[2], whitePoint: ws.White}
}

// xyzToRGB expects XYZ already relative to the working space white.
func (ws *RGBWorkingSpace) xyzToRGB(c XYZ) RGB {
	v := ws.fromXYZ.MulVec(util.Vector3[float64]{c.x, c.y, c.z})
	return RGB{
		r: ws.Compander.Compand(v[0]),
		g: ws.Compander.Compand(v[1]),
		b: ws.Compander.Compand(v[2]),
	}
}

func (ws *RGBWorkingSpace) String() string {
	return ws.Name
}
