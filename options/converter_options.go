package options

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	DEFAULT_WORKING_SPACE = "sRGB"
	DEFAULT_ADAPTATION    = "Bradford"
)

// ConverterOptions configures a colour converter. Names are resolved by the
// colour package; empty fields take defaults.
type ConverterOptions struct {
	// WorkingSpace names the RGB working space, e.g. "sRGB", "AdobeRGB".
	WorkingSpace string `toml:"working_space"`

	// Adaptation names the chromatic adaptation method, e.g. "Bradford".
	Adaptation string `toml:"adaptation"`

	// TargetWhitePoint, when set, is the illuminant every white point
	// bearing result is adapted to. Empty keeps the source white.
	TargetWhitePoint string `toml:"target_white_point"`

	Debug bool `toml:"debug"`
}

func NewConverterOptions(options *ConverterOptions) *ConverterOptions {

	opt := &ConverterOptions{
		WorkingSpace: DEFAULT_WORKING_SPACE,
		Adaptation:   DEFAULT_ADAPTATION,
	}
	if options != nil {
		if options.WorkingSpace != "" {
			opt.WorkingSpace = options.WorkingSpace
		}
		if options.Adaptation != "" {
			opt.Adaptation = options.Adaptation
		}
		opt.TargetWhitePoint = options.TargetWhitePoint
		opt.Debug = options.Debug
	}
	return opt
}

// ParseConverterOptions reads TOML and fills in defaults.
func ParseConverterOptions(data []byte) (*ConverterOptions, error) {
	var opt ConverterOptions
	if err := toml.Unmarshal(data, &opt); err != nil {
		return nil, errors.Wrap(err, "parsing converter options")
	}
	return NewConverterOptions(&opt), nil
}

func LoadConverterOptions(path string) (*ConverterOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ParseConverterOptions(data)
}
