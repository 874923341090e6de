package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colourwheel/colour"
	"github.com/kpfaulkner/colourwheel/options"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

type request struct {
	from        string
	to          string
	sourceWhite string
	swatch      bool
	components  []string
	options     *options.ConverterOptions
}

type result struct {
	source    colour.Colour
	converted colour.Colour
	route     []colour.Model
	rgb       colour.RGB
	converter *colour.Converter
}

func (r *request) run() (*result, error) {
	from, err := colour.ParseModel(r.from)
	if err != nil {
		return nil, err
	}
	to, err := colour.ParseModel(r.to)
	if err != nil {
		return nil, err
	}

	var wp *colour.Illuminant
	if r.sourceWhite != "" {
		if wp, err = colour.IlluminantByName(r.sourceWhite); err != nil {
			return nil, err
		}
	}

	vals := make([]float64, 0, len(r.components))
	for _, s := range r.components {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "component %q", s)
		}
		vals = append(vals, v)
	}

	conv, err := colour.NewConverter(r.options)
	if err != nil {
		return nil, err
	}
	src, err := colour.FromSlice(from, vals, wp)
	if err != nil {
		return nil, err
	}
	converted, err := conv.Convert(src, to)
	if err != nil {
		return nil, err
	}
	route, err := colour.Route(from, to)
	if err != nil {
		return nil, err
	}

	return &result{
		source:    src,
		converted: converted,
		route:     route,
		rgb:       conv.ToRGB(src),
		converter: conv,
	}, nil
}

func (res *result) print(w io.Writer, swatch bool) {
	names := make([]string, len(res.route))
	for i, m := range res.route {
		names[i] = m.String()
	}

	fmt.Fprintf(w, "%s\n", res.source)
	fmt.Fprintf(w, "%s\n", res.converted)
	fmt.Fprintf(w, "route: %s\n", strings.Join(names, " -> "))
	if wpc, ok := res.converted.(colour.WhitePointer); ok {
		fmt.Fprintf(w, "white: %s\n", wpc.WhitePoint())
	}
	fmt.Fprintf(w, "working space: %s, adaptation: %s\n", res.converter.WorkingSpace(), res.converter.Adaptation())

	if !res.rgb.InGamut() {
		fmt.Fprintf(w, "out of %s gamut: %s\n", res.converter.WorkingSpace(), res.rgb)
	}
	if swatch {
		out := termenv.NewOutput(w)
		hex := hexString(res.rgb)
		fmt.Fprintf(w, "%s %s\n", out.String("      ").Background(out.Color(hex)), hex)
	}
}

// hexString clamps to the displayable range.
func hexString(c colour.RGB) string {
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R()), channel(c.G()), channel(c.B()))
}
