package colour

// RGB is a companded device RGB value, nominally in [0, 1]. Which primaries
// and transfer curve it refers to is decided by the RGBWorkingSpace of the
// Converter that interprets it.
type RGB struct {
	r float64
	g float64
	b float64
}

func NewRGB(r float64, g float64, b float64) RGB {
	return RGB{r: r, g: g, b: b}
}

// NewRGB8 scales 8 bit channels into [0, 1].
func NewRGB8(r uint8, g uint8, b uint8) RGB {
	return RGB{r: float64(r) / 255, g: float64(g) / 255, b: float64(b) / 255}
}

func NewRGBFromSlice(vals []float64) (RGB, error) {
	if err := checkDimension(MODEL_RGB, vals); err != nil {
		return RGB{}, err
	}
	return NewRGB(vals[0], vals[1], vals[2]), nil
}

func (c RGB) R() float64 { return c.r }
func (c RGB) G() float64 { return c.g }
func (c RGB) B() float64 { return c.b }

func (c RGB) Model() Model {
	return MODEL_RGB
}

// Components returns R, G, B.
func (c RGB) Components() []float64 {
	return []float64{c.r, c.g, c.b}
}

// InGamut reports whether every channel lies in [0, 1].
func (c RGB) InGamut() bool {
	return c.r >= 0 && c.r <= 1 && c.g >= 0 && c.g <= 1 && c.b >= 0 && c.b <= 1
}

func (c RGB) Equal(other RGB) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b
}

func (c RGB) Hash() uint64 {
	return hashColour(MODEL_RGB, c.Components(), nil)
}

func (c RGB) String() string {
	return formatColour("RGB", []string{"R", "G", "B"}, c.Components())
}

func (RGB) isColour() {}
