package colour

// XyY is a CIE xyY value: chromaticity x, y plus the luminance Y of the
// tristimulus value.
type XyY struct {
	x          float64
	y          float64
	luminance  float64
	whitePoint *Illuminant
}

func NewXyY(x float64, y float64, luminance float64) XyY {
	return NewXyYWithWhitePoint(x, y, luminance, nil)
}

func NewXyYWithWhitePoint(x float64, y float64, luminance float64, wp *Illuminant) XyY {
	return XyY{x: x, y: y, luminance: luminance, whitePoint: whiteOrDefault(wp)}
}

// NewXyYFromSlice reads x, y, Y from the first three elements.
func NewXyYFromSlice(vals []float64, wp *Illuminant) (XyY, error) {
	if err := checkDimension(MODEL_XYY, vals); err != nil {
		return XyY{}, err
	}
	return NewXyYWithWhitePoint(vals[0], vals[1], vals[2], wp), nil
}

// X is the x chromaticity coordinate.
func (c XyY) X() float64 { return c.x }

// Y is the y chromaticity coordinate, not the luminance.
func (c XyY) Y() float64 { return c.y }

func (c XyY) Luminance() float64 { return c.luminance }

func (c XyY) Chromaticity() CIEXY {
	return CIEXY{X: c.x, Y: c.y}
}

func (c XyY) WhitePoint() *Illuminant {
	return whiteOrDefault(c.whitePoint)
}

func (c XyY) Model() Model {
	return MODEL_XYY
}

// Components returns x, y, Y.
func (c XyY) Components() []float64 {
	return []float64{c.x, c.y, c.luminance}
}

func (c XyY) Equal(other XyY) bool {
	return c.x == other.x && c.y == other.y && c.luminance == other.luminance && c.WhitePoint().Matches(other.WhitePoint())
}

func (c XyY) Hash() uint64 {
	return hashColour(MODEL_XYY, c.Components(), c.WhitePoint())
}

func (c XyY) String() string {
	return formatColour("xyY", []string{"x", "y", "Y"}, c.Components())
}

func (XyY) isColour() {}

// xyzToXyY puts black at the chromaticity of the white point.
func xyzToXyY(c XYZ) XyY {
	wp := c.WhitePoint()
	xy := ChromaticityFromXYZ(c.x, c.y, c.z, wp.Chromaticity())
	return XyY{x: xy.X, y: xy.Y, luminance: c.y, whitePoint: wp}
}

func xyYToXYZ(c XyY) XYZ {
	x, y, z := c.Chromaticity().ToXYZ(c.luminance)
	return XYZ{x: x, y: y, z: z, whitePoint: c.WhitePoint()}
}
