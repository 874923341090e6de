package colour

// XYZ is a CIE 1931 tristimulus value. Y is relative luminance, 1 for the
// reference white.
type XYZ struct {
	x          float64
	y          float64
	z          float64
	whitePoint *Illuminant
}

func NewXYZ(x float64, y float64, z float64) XYZ {
	return NewXYZWithWhitePoint(x, y, z, nil)
}

// NewXYZWithWhitePoint records the white the values are relative to. A nil
// white point selects DEFAULT_WHITE_POINT.
func NewXYZWithWhitePoint(x float64, y float64, z float64, wp *Illuminant) XYZ {
	return XYZ{x: x, y: y, z: z, whitePoint: whiteOrDefault(wp)}
}

// NewXYZFromSlice reads X, Y, Z from the first three elements.
func NewXYZFromSlice(vals []float64, wp *Illuminant) (XYZ, error) {
	if err := checkDimension(MODEL_XYZ, vals); err != nil {
		return XYZ{}, err
	}
	return NewXYZWithWhitePoint(vals[0], vals[1], vals[2], wp), nil
}

func (c XYZ) X() float64 { return c.x }
func (c XYZ) Y() float64 { return c.y }
func (c XYZ) Z() float64 { return c.z }

func (c XYZ) WhitePoint() *Illuminant {
	return whiteOrDefault(c.whitePoint)
}

func (c XYZ) Model() Model {
	return MODEL_XYZ
}

// Components returns X, Y, Z.
func (c XYZ) Components() []float64 {
	return []float64{c.x, c.y, c.z}
}

func (c XYZ) Equal(other XYZ) bool {
	return c.x == other.x && c.y == other.y && c.z == other.z && c.WhitePoint().Matches(other.WhitePoint())
}

func (c XYZ) Hash() uint64 {
	return hashColour(MODEL_XYZ, c.Components(), c.WhitePoint())
}

func (c XYZ) String() string {
	return formatColour("XYZ", []string{"X", "Y", "Z"}, c.Components())
}

// Chromaticity falls back to the white point for black.
func (c XYZ) Chromaticity() CIEXY {
	return ChromaticityFromXYZ(c.x, c.y, c.z, c.WhitePoint().Chromaticity())
}

func (XYZ) isColour() {}
