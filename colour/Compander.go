package colour

import (
	"math"

	"github.com/kpfaulkner/colourwheel/util"
)

// Compander converts between companded (display encoded) and linear light
// channel values. Implementations are odd-symmetric so negative, out of
// gamut values keep their sign and round trip.
type Compander interface {
	Linearise(v float64) float64
	Compand(v float64) float64
}

// SRGBCompander is the IEC 61966-2-1 piecewise curve.
type SRGBCompander struct{}

func (SRGBCompander) Linearise(v float64) float64 {
	a := math.Abs(v)
	if a <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((a+0.055)/1.055, 2.4), v)
}

func (SRGBCompander) Compand(v float64) float64 {
	a := math.Abs(v)
	if a <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(a, 1/2.4)-0.055, v)
}

// GammaCompander is a pure power law.
type GammaCompander struct {
	Gamma float64
}

func (gc GammaCompander) Linearise(v float64) float64 {
	return util.SignedPow(v, gc.Gamma)
}

func (gc GammaCompander) Compand(v float64) float64 {
	return util.SignedPow(v, 1/gc.Gamma)
}

// ROMMCompander is the ProPhoto RGB curve: gamma 1.8 with a linear segment
// below 1/512.
type ROMMCompander struct{}

const rommLinearLimit = 1.0 / 512.0

func (ROMMCompander) Linearise(v float64) float64 {
	if math.Abs(v) < 16*rommLinearLimit {
		return v / 16
	}
	return util.SignedPow(v, 1.8)
}

func (ROMMCompander) Compand(v float64) float64 {
	if math.Abs(v) < rommLinearLimit {
		return v * 16
	}
	return util.SignedPow(v, 1/1.8)
}

// LinearCompander leaves values untouched.
type LinearCompander struct{}

func (LinearCompander) Linearise(v float64) float64 { return v }
func (LinearCompander) Compand(v float64) float64   { return v }
