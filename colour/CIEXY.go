package colour

import (
	"fmt"
)

// CIEXY is a chromaticity coordinate pair. The luminance is not part of it.
type CIEXY struct {
	X float64
	Y float64
}

func NewCIEXY(x float64, y float64) CIEXY {
	return CIEXY{X: x, Y: y}
}

// ChromaticityFromXYZ projects tristimulus values onto the chromaticity
// plane. When X+Y+Z is zero there is no defined projection and fallback is
// returned, normally the chromaticity of the reference white.
func ChromaticityFromXYZ(x float64, y float64, z float64, fallback CIEXY) CIEXY {
	sum := x + y + z
	if sum == 0 {
		return fallback
	}
	return CIEXY{X: x / sum, Y: y / sum}
}

// ToXYZ gives the tristimulus values with luminance lum. A zero y
// coordinate has no finite answer, black is returned instead.
func (cxy CIEXY) ToXYZ(lum float64) (float64, float64, float64) {
	if cxy.Y == 0 {
		return 0, 0, 0
	}
	scale := lum / cxy.Y
	return cxy.X * scale, lum, (1 - cxy.X - cxy.Y) * scale
}

// Matches determines if values are equal.
func (cxy CIEXY) Matches(other CIEXY) bool {
	return cxy.X == other.X && cxy.Y == other.Y
}

func (cxy CIEXY) String() string {
	return fmt.Sprintf("CIEXY [x=%s, y=%s]", formatComponent(cxy.X), formatComponent(cxy.Y))
}
