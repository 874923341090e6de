package colour

import (
	"strings"

	"github.com/pkg/errors"
)

// Model identifies a colour space.
type Model int32

const (
	MODEL_RGB Model = iota
	MODEL_XYZ
	MODEL_LUV
	MODEL_LAB
	MODEL_XYY
	MODEL_LMS
	MODEL_HSV
	MODEL_HSL
	MODEL_CMYK
)

// MODELS lists every supported model in declaration order.
var MODELS = []Model{MODEL_RGB, MODEL_XYZ, MODEL_LUV, MODEL_LAB, MODEL_XYY, MODEL_LMS, MODEL_HSV, MODEL_HSL, MODEL_CMYK}

func (m Model) String() string {
	switch m {
	case MODEL_RGB:
		return "RGB"
	case MODEL_XYZ:
		return "XYZ"
	case MODEL_LUV:
		return "Luv"
	case MODEL_LAB:
		return "Lab"
	case MODEL_XYY:
		return "xyY"
	case MODEL_LMS:
		return "LMS"
	case MODEL_HSV:
		return "HSV"
	case MODEL_HSL:
		return "HSL"
	case MODEL_CMYK:
		return "CMYK"
	}
	return "Unknown"
}

func (m Model) Valid() bool {
	return m >= MODEL_RGB && m <= MODEL_CMYK
}

// Dimensions is the number of components a value of the model carries.
func (m Model) Dimensions() int {
	if m == MODEL_CMYK {
		return 4
	}
	return 3
}

// HasWhitePoint reports whether values of the model are relative to a
// reference white.
func (m Model) HasWhitePoint() bool {
	switch m {
	case MODEL_XYZ, MODEL_LUV, MODEL_LAB, MODEL_XYY, MODEL_LMS:
		return true
	}
	return false
}

// parent is the neighbour one step closer to XYZ, which is the root of the
// conversion tree.
func (m Model) parent() Model {
	switch m {
	case MODEL_HSV, MODEL_HSL, MODEL_CMYK:
		return MODEL_RGB
	}
	return MODEL_XYZ
}

func (m Model) pathToRoot() []Model {
	path := []Model{m}
	for m != MODEL_XYZ {
		m = m.parent()
		path = append(path, m)
	}
	return path
}

// ParseModel accepts the String form of a model, ignoring case.
func ParseModel(name string) (Model, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range MODELS {
		if strings.ToLower(m.String()) == n {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownModel, "%q", name)
}

// Route lists the models a conversion from one model to another passes
// through, both ends included. Pairs meet at their closest shared
// neighbour, so RGB derived models never leave RGB and everything else
// pivots through XYZ.
func Route(from Model, to Model) ([]Model, error) {
	if !from.Valid() {
		return nil, errors.Wrapf(ErrUnknownModel, "source %d", from)
	}
	if !to.Valid() {
		return nil, errors.Wrapf(ErrUnknownModel, "target %d", to)
	}
	if from == to {
		return []Model{from}, nil
	}

	up := from.pathToRoot()
	down := to.pathToRoot()

	// strip the shared tail above the meeting point
	for len(up) > 1 && len(down) > 1 && up[len(up)-2] == down[len(down)-2] {
		up = up[:len(up)-1]
		down = down[:len(down)-1]
	}

	route := append([]Model{}, up...)
	for i := len(down) - 2; i >= 0; i-- {
		route = append(route, down[i])
	}
	return route, nil
}

// Colour is implemented by every value type in this package and only by
// them.
type Colour interface {
	Model() Model

	// Components returns a copy of the values in the model's documented
	// order.
	Components() []float64

	String() string

	isColour()
}

// WhitePointer is a Colour defined relative to a reference white.
type WhitePointer interface {
	Colour
	WhitePoint() *Illuminant
}

// FromSlice builds a value of the given model. White point is only used by
// models that carry one, nil selects DEFAULT_WHITE_POINT.
func FromSlice(model Model, vals []float64, wp *Illuminant) (Colour, error) {
	switch model {
	case MODEL_RGB:
		return NewRGBFromSlice(vals)
	case MODEL_XYZ:
		return NewXYZFromSlice(vals, wp)
	case MODEL_LUV:
		return NewLuvFromSlice(vals, wp)
	case MODEL_LAB:
		return NewLabFromSlice(vals, wp)
	case MODEL_XYY:
		return NewXyYFromSlice(vals, wp)
	case MODEL_LMS:
		return NewLMSFromSlice(vals, wp)
	case MODEL_HSV:
		return NewHSVFromSlice(vals)
	case MODEL_HSL:
		return NewHSLFromSlice(vals)
	case MODEL_CMYK:
		return NewCMYKFromSlice(vals)
	}
	return nil, errors.Wrapf(ErrUnknownModel, "%d", model)
}

// Equal is exact: same model, IEEE equal components and matching white
// points.
func Equal(a Colour, b Colour) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Model() != b.Model() {
		return false
	}
	ac := a.Components()
	bc := b.Components()
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return whitePointOf(a).Matches(whitePointOf(b))
}

// Hash is consistent with Equal.
func Hash(c Colour) uint64 {
	if c == nil {
		return 0
	}
	return hashColour(c.Model(), c.Components(), whitePointOf(c))
}

func whitePointOf(c Colour) *Illuminant {
	if wpc, ok := c.(WhitePointer); ok {
		return wpc.WhitePoint()
	}
	return nil
}
