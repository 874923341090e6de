package colour

import (
	"fmt"

	"github.com/kpfaulkner/colourwheel/options"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Converter transforms colour values between models. It holds no mutable
// state and is safe for concurrent use.
//
// RGB values are interpreted in the converter's working space. White point
// bearing results keep the white of their source unless a target white
// point is set, in which case XYZ is chromatically adapted on the way
// through. RGB, HSV, HSL and CMYK carry no white, so XYZ derived from them
// is relative to DEFAULT_WHITE_POINT. A value with any other white that
// passes through those models comes back relative to DEFAULT_WHITE_POINT.
type Converter struct {
	workingSpace *RGBWorkingSpace
	adaptation   AdaptationMethod
	targetWhite  *Illuminant
}

var defaultConverter = NewConverterWith(WS_SRGB, ADAPT_BRADFORD, nil)

// DefaultConverter uses sRGB, Bradford adaptation and no target white.
func DefaultConverter() *Converter {
	return defaultConverter
}

// NewConverter resolves the names in opt. A nil opt gives the defaults.
func NewConverter(opt *options.ConverterOptions) (*Converter, error) {
	opt = options.NewConverterOptions(opt)

	ws, err := WorkingSpaceByName(opt.WorkingSpace)
	if err != nil {
		return nil, err
	}
	method, err := ParseAdaptationMethod(opt.Adaptation)
	if err != nil {
		return nil, err
	}
	var target *Illuminant
	if opt.TargetWhitePoint != "" {
		if target, err = IlluminantByName(opt.TargetWhitePoint); err != nil {
			return nil, err
		}
	}

	if opt.Debug {
		log.Debugf("converter: working space %s, adaptation %s, target white %v", ws, method, target)
	}
	return NewConverterWith(ws, method, target), nil
}

// NewConverterWith builds a converter from resolved parts. A nil working
// space means sRGB, a nil target white keeps source whites.
func NewConverterWith(ws *RGBWorkingSpace, method AdaptationMethod, targetWhite *Illuminant) *Converter {
	if ws == nil {
		ws = WS_SRGB
	}
	return &Converter{
		workingSpace: ws,
		adaptation:   method,
		targetWhite:  targetWhite,
	}
}

// WithTargetWhitePoint returns a copy adapting results to wp. Nil turns
// adaptation off.
func (c *Converter) WithTargetWhitePoint(wp *Illuminant) *Converter {
	cp := *c
	cp.targetWhite = wp
	return &cp
}

func (c *Converter) WorkingSpace() *RGBWorkingSpace {
	return c.workingSpace
}

func (c *Converter) Adaptation() AdaptationMethod {
	return c.adaptation
}

// TargetWhitePoint is nil when source whites are kept.
func (c *Converter) TargetWhitePoint() *Illuminant {
	return c.targetWhite
}

// Convert produces the value of src in the target model. The only error is
// ErrUnknownModel, for an invalid target or a nil source.
func (c *Converter) Convert(src Colour, target Model) (Colour, error) {
	if src == nil {
		return nil, errors.Wrap(ErrUnknownModel, "nil source colour")
	}

	switch target {
	case MODEL_RGB:
		return c.ToRGB(src), nil
	case MODEL_XYZ:
		return c.ToXYZ(src), nil
	case MODEL_LUV:
		return c.ToLuv(src), nil
	case MODEL_LAB:
		return c.ToLab(src), nil
	case MODEL_XYY:
		return c.ToXyY(src), nil
	case MODEL_LMS:
		return c.ToLMS(src), nil
	case MODEL_HSV:
		return c.ToHSV(src), nil
	case MODEL_HSL:
		return c.ToHSL(src), nil
	case MODEL_CMYK:
		return c.ToCMYK(src), nil
	}
	return nil, errors.Wrapf(ErrUnknownModel, "target %d", target)
}

// ConvertSlice builds a from value out of vals and converts it. Short
// input fails with ErrInvalidDimension before anything is converted.
func (c *Converter) ConvertSlice(from Model, vals []float64, wp *Illuminant, to Model) (Colour, error) {
	src, err := FromSlice(from, vals, wp)
	if err != nil {
		return nil, err
	}
	return c.Convert(src, to)
}

// Chromaticity of any value after adaptation to the target white, if one
// is set. Black takes the chromaticity of its white.
func (c *Converter) Chromaticity(src Colour) CIEXY {
	return c.ToXYZ(src).Chromaticity()
}

// keepsWhite reports whether a value relative to wp needs no adaptation.
func (c *Converter) keepsWhite(wp *Illuminant) bool {
	return c.targetWhite == nil || c.targetWhite.Matches(wp)
}

func (c *Converter) ToXYZ(src Colour) XYZ {
	xyz := c.toXYZ(src)
	if c.keepsWhite(xyz.WhitePoint()) {
		return xyz
	}
	return AdaptXYZ(xyz, c.targetWhite, c.adaptation)
}

func (c *Converter) ToLuv(src Colour) Luv {
	if luv, ok := src.(Luv); ok && c.keepsWhite(luv.WhitePoint()) {
		return luv
	}
	return xyzToLuv(c.ToXYZ(src))
}

func (c *Converter) ToLab(src Colour) Lab {
	if lab, ok := src.(Lab); ok && c.keepsWhite(lab.WhitePoint()) {
		return lab
	}
	return xyzToLab(c.ToXYZ(src))
}

func (c *Converter) ToXyY(src Colour) XyY {
	if xyy, ok := src.(XyY); ok && c.keepsWhite(xyy.WhitePoint()) {
		return xyy
	}
	return xyzToXyY(c.ToXYZ(src))
}

// ToLMS applies the cone matrix to XYZ. With a target white set the XYZ is
// adapted to it first.
func (c *Converter) ToLMS(src Colour) LMS {
	if lms, ok := src.(LMS); ok && c.keepsWhite(lms.WhitePoint()) {
		return lms
	}
	return xyzToLMS(c.ToXYZ(src))
}

// ToRGB keeps RGB derived models inside RGB. Anything else goes through
// XYZ adapted to the working space white.
func (c *Converter) ToRGB(src Colour) RGB {
	switch s := src.(type) {
	case RGB:
		return s
	case HSV:
		return hsvToRGB(s)
	case HSL:
		return hslToRGB(s)
	case CMYK:
		return cmykToRGB(s)
	}
	xyz := AdaptXYZ(c.toXYZ(src), c.workingSpace.White, c.adaptation)
	return c.workingSpace.xyzToRGB(xyz)
}

func (c *Converter) ToHSV(src Colour) HSV {
	if hsv, ok := src.(HSV); ok {
		return hsv
	}
	return rgbToHSV(c.ToRGB(src))
}

func (c *Converter) ToHSL(src Colour) HSL {
	if hsl, ok := src.(HSL); ok {
		return hsl
	}
	return rgbToHSL(c.ToRGB(src))
}

func (c *Converter) ToCMYK(src Colour) CMYK {
	if cmyk, ok := src.(CMYK); ok {
		return cmyk
	}
	return rgbToCMYK(c.ToRGB(src))
}

// toXYZ gives XYZ relative to the source's own white, without adaptation.
// RGB derived values carry no white, so they come out relative to
// DEFAULT_WHITE_POINT whatever the working space white is.
func (c *Converter) toXYZ(src Colour) XYZ {
	switch s := src.(type) {
	case XYZ:
		return s
	case Luv:
		return luvToXYZ(s)
	case Lab:
		return labToXYZ(s)
	case XyY:
		return xyYToXYZ(s)
	case LMS:
		return lmsToXYZ(s)
	case RGB, HSV, HSL, CMYK:
		return AdaptXYZ(c.workingSpace.rgbToXYZ(c.ToRGB(src)), DEFAULT_WHITE_POINT, c.adaptation)
	}
	// Colour is sealed, so only a nil interface gets here.
	panic(fmt.Sprintf("colour: cannot convert %T", src))
}

// Convert uses the default converter.
func Convert(src Colour, target Model) (Colour, error) {
	return defaultConverter.Convert(src, target)
}
