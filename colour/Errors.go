package colour

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when a component slice is shorter than
	// the model requires.
	ErrInvalidDimension = errors.New("invalid dimension")

	ErrUnknownModel        = errors.New("unknown colour model")
	ErrUnknownIlluminant   = errors.New("unknown illuminant")
	ErrInvalidIlluminant   = errors.New("invalid illuminant")
	ErrUnknownWorkingSpace = errors.New("unknown RGB working space")
	ErrUnknownAdaptation   = errors.New("unknown chromatic adaptation method")
)

func invalidDimension(model Model, got int) error {
	return errors.Wrapf(ErrInvalidDimension, "%s needs %d components, got %d", model, model.Dimensions(), got)
}

// checkDimension guards every slice based constructor.
func checkDimension(model Model, vals []float64) error {
	if len(vals) < model.Dimensions() {
		return invalidDimension(model, len(vals))
	}
	return nil
}
