package colour

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Illuminant is a reference white expressed as CIE 1931 XYZ tristimulus
// values with Y normalised to 1. Entries are shared by pointer and never
// modified after construction.
type Illuminant struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

// Standard illuminants, CIE 1931 2 degree observer, Y = 1.
var (
	WP_A   = &Illuminant{Name: "A", X: 1.09850, Y: 1.0, Z: 0.35585}
	WP_B   = &Illuminant{Name: "B", X: 0.99072, Y: 1.0, Z: 0.85223}
	WP_C   = &Illuminant{Name: "C", X: 0.98074, Y: 1.0, Z: 1.18232}
	WP_D50 = &Illuminant{Name: "D50", X: 0.96422, Y: 1.0, Z: 0.82521}
	WP_D55 = &Illuminant{Name: "D55", X: 0.95682, Y: 1.0, Z: 0.92149}
	WP_D65 = &Illuminant{Name: "D65", X: 0.95047, Y: 1.0, Z: 1.08883}
	WP_D75 = &Illuminant{Name: "D75", X: 0.94972, Y: 1.0, Z: 1.22638}
	WP_E   = &Illuminant{Name: "E", X: 1.0, Y: 1.0, Z: 1.0}
	WP_F2  = &Illuminant{Name: "F2", X: 0.99186, Y: 1.0, Z: 0.67393}
	WP_F7  = &Illuminant{Name: "F7", X: 0.95041, Y: 1.0, Z: 1.08747}
	WP_F11 = &Illuminant{Name: "F11", X: 1.00962, Y: 1.0, Z: 0.64350}

	// DEFAULT_WHITE_POINT is substituted whenever a white point bearing
	// value is constructed without one.
	DEFAULT_WHITE_POINT = WP_D65

	illuminants = map[string]*Illuminant{}
)

func init() {
	for _, wp := range []*Illuminant{WP_A, WP_B, WP_C, WP_D50, WP_D55, WP_D65, WP_D75, WP_E, WP_F2, WP_F7, WP_F11} {
		if err := ValidateIlluminant(wp); err != nil {
			log.Panicf("illuminant table: %v", err)
		}
		illuminants[strings.ToUpper(wp.Name)] = wp
	}
}

// NewIlluminant creates a custom reference white. The values must satisfy
// ValidateIlluminant.
func NewIlluminant(name string, x float64, y float64, z float64) (*Illuminant, error) {
	wp := &Illuminant{Name: name, X: x, Y: y, Z: z}
	if err := ValidateIlluminant(wp); err != nil {
		return nil, err
	}
	return wp, nil
}

// NewIlluminantFromChromaticity creates a white point from its (x, y)
// chromaticity with Y = 1.
func NewIlluminantFromChromaticity(name string, xy CIEXY) (*Illuminant, error) {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return nil, errors.Wrapf(ErrInvalidIlluminant, "%s: chromaticity %v out of range", name, xy)
	}
	x, y, z := xy.ToXYZ(1)
	return NewIlluminant(name, x, y, z)
}

// ValidateIlluminant checks that the white is finite, has Y == 1 and
// positive X and Z.
func ValidateIlluminant(wp *Illuminant) error {
	if wp == nil {
		return errors.Wrap(ErrInvalidIlluminant, "nil white point")
	}
	for _, v := range []float64{wp.X, wp.Y, wp.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidIlluminant, "%s: non finite component", wp.Name)
		}
	}
	if wp.Y != 1 {
		return errors.Wrapf(ErrInvalidIlluminant, "%s: Y must be 1, got %v", wp.Name, wp.Y)
	}
	if wp.X <= 0 || wp.Z <= 0 {
		return errors.Wrapf(ErrInvalidIlluminant, "%s: X and Z must be positive", wp.Name)
	}
	return nil
}

// IlluminantByName looks up a standard illuminant, ignoring case.
func IlluminantByName(name string) (*Illuminant, error) {
	wp, ok := illuminants[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIlluminant, "%q", name)
	}
	return wp, nil
}

// Illuminants lists the standard table sorted by name.
func Illuminants() []*Illuminant {
	res := make([]*Illuminant, 0, len(illuminants))
	for _, wp := range illuminants {
		res = append(res, wp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Matches compares the tristimulus values only, the name is ignored.
func (wp *Illuminant) Matches(other *Illuminant) bool {
	if wp == other {
		return true
	}
	if wp == nil || other == nil {
		return false
	}
	return wp.X == other.X && wp.Y == other.Y && wp.Z == other.Z
}

func (wp *Illuminant) Chromaticity() CIEXY {
	return ChromaticityFromXYZ(wp.X, wp.Y, wp.Z, CIEXY{X: 1.0 / 3.0, Y: 1.0 / 3.0})
}

func (wp *Illuminant) String() string {
	return wp.Name + " [X=" + formatComponent(wp.X) + ", Y=" + formatComponent(wp.Y) + ", Z=" + formatComponent(wp.Z) + "]"
}

// whiteOrDefault applies the construction time default.
func whiteOrDefault(wp *Illuminant) *Illuminant {
	if wp == nil {
		return DEFAULT_WHITE_POINT
	}
	return wp
}
