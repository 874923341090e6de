package colour

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kpfaulkner/colourwheel/options"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roundTripSamples = 1000

var approx = cmpopts.EquateApprox(1e-6, 1e-6)

// randomRGB gives in-gamut, non-neutral samples away from the cube edges.
// The seed is fixed so failures reproduce.
func randomRGB(n int) []RGB {
	r := rand.New(rand.NewPCG(0x636f6c6f, 0x75727768))
	res := make([]RGB, 0, n)
	for len(res) < n {
		vals := [3]float64{}
		for i := range vals {
			vals[i] = 0.02 + 0.96*r.Float64()
		}
		if max(vals[0], vals[1], vals[2])-min(vals[0], vals[1], vals[2]) < 0.01 {
			continue
		}
		res = append(res, NewRGB(vals[0], vals[1], vals[2]))
	}
	return res
}

func mustConvert(t *testing.T, conv *Converter, src Colour, target Model) Colour {
	t.Helper()
	res, err := conv.Convert(src, target)
	require.NoError(t, err)
	require.Equal(t, target, res.Model())
	return res
}

var roundTripConverters = []struct {
	name string
	conv *Converter
}{
	{name: "default", conv: DefaultConverter()},
	{name: "AdobeRGB", conv: NewConverterWith(WS_ADOBE_RGB, ADAPT_BRADFORD, nil)},
	{name: "ProPhotoRGB", conv: NewConverterWith(WS_PROPHOTO_RGB, ADAPT_CAT02, nil)},
	{name: "LinearSRGB", conv: NewConverterWith(WS_LINEAR_SRGB, ADAPT_VON_KRIES, nil)},
}

// directSamples builds values straight from components in the given model,
// with the default white, independent of any working space.
func directSamples(t *testing.T, model Model, n int) []Colour {
	t.Helper()
	res := make([]Colour, 0, n)
	for _, rgb := range randomRGB(n) {
		vals := mustConvert(t, DefaultConverter(), rgb, model).Components()
		c, err := FromSlice(model, vals, nil)
		require.NoError(t, err)
		res = append(res, c)
	}
	return res
}

func checkRoundTrip(t *testing.T, conv *Converter, src Colour, to Model) {
	t.Helper()
	via := mustConvert(t, conv, src, to)
	back := mustConvert(t, conv, via, src.Model())

	if diff := cmp.Diff(src.Components(), back.Components(), approx); diff != "" {
		t.Fatalf("%v -> %v -> %v mismatch (-want +got):\n%s", src, via, back, diff)
	}
	if !whitePointOf(src).Matches(whitePointOf(back)) {
		t.Fatalf("%v came back relative to %v", src, whitePointOf(back))
	}
}

func TestRoundTripAllModelPairs(t *testing.T) {

	samples := randomRGB(roundTripSamples)
	for _, tc := range roundTripConverters {
		t.Run(tc.name, func(t *testing.T) {
			for _, from := range MODELS {
				for _, to := range MODELS {
					t.Run(from.String()+"-"+to.String(), func(t *testing.T) {
						for _, rgb := range samples {
							checkRoundTrip(t, tc.conv, mustConvert(t, tc.conv, rgb, from), to)
						}
					})
				}
			}
		})
	}
}

func TestRoundTripDirectlyConstructed(t *testing.T) {

	for _, from := range MODELS {
		samples := directSamples(t, from, roundTripSamples)
		for _, tc := range roundTripConverters {
			for _, to := range MODELS {
				t.Run(tc.name+"/"+from.String()+"-"+to.String(), func(t *testing.T) {
					for _, src := range samples {
						checkRoundTrip(t, tc.conv, src, to)
					}
				})
			}
		}
	}
}

func TestDefaultWhiteSurvivesRGBFamily(t *testing.T) {
	src := NewLab(50, 20, -30)

	for _, tc := range roundTripConverters {
		for _, via := range []Model{MODEL_RGB, MODEL_HSV, MODEL_HSL, MODEL_CMYK} {
			t.Run(tc.name+"/"+via.String(), func(t *testing.T) {
				res := mustConvert(t, tc.conv, mustConvert(t, tc.conv, src, via), MODEL_LAB)
				assert.Same(t, DEFAULT_WHITE_POINT, res.(Lab).WhitePoint())
				if diff := cmp.Diff(src.Components(), res.Components(), approx); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestForeignWhiteThroughRGBFamily(t *testing.T) {
	conv := DefaultConverter()
	src := NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D50)

	// RGB keeps no white, so the way back lands on the default white with
	// the same colour adapted to it
	back := conv.ToXYZ(conv.ToHSV(src))
	expected := AdaptXYZ(src, DEFAULT_WHITE_POINT, conv.Adaptation())
	assert.Same(t, DEFAULT_WHITE_POINT, back.WhitePoint())
	if diff := cmp.Diff(expected.Components(), back.Components(), approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCMYKRoundTripsInCanonicalForm(t *testing.T) {
	conv := DefaultConverter()
	src := NewCMYK(0.2, 0.2, 0.2, 0.2)

	// grey ink on grey black collapses onto black alone
	back := conv.ToCMYK(conv.ToLab(src))
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.36}, back.Components(), 1e-9)
	assert.InDeltaSlice(t, conv.ToRGB(src).Components(), conv.ToRGB(back).Components(), 1e-9)

	again := conv.ToCMYK(conv.ToLab(back))
	if diff := cmp.Diff(back.Components(), again.Components(), approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripOutOfGamut(t *testing.T) {
	conv := DefaultConverter()
	for _, rgb := range []RGB{
		NewRGB(-0.2, 1.3, 0.5),
		NewRGB(1.5, -0.5, 2),
		NewRGB(-1, -1, -1),
	} {
		for _, m := range []Model{MODEL_XYZ, MODEL_LAB, MODEL_LUV, MODEL_XYY, MODEL_LMS} {
			via := mustConvert(t, conv, rgb, m)
			back := conv.ToRGB(via)
			if diff := cmp.Diff(rgb.Components(), back.Components(), approx); diff != "" {
				t.Errorf("%v via %v mismatch (-want +got):\n%s", rgb, m, diff)
			}
			assert.False(t, back.InGamut())
		}
	}
}

func TestBlackXYZToLuvIsExactlyZero(t *testing.T) {
	res, err := Convert(NewXYZ(0, 0, 0), MODEL_LUV)
	require.NoError(t, err)

	luv := res.(Luv)
	assert.Equal(t, []float64{0, 0, 0}, luv.Components())
	assert.Same(t, WP_D65, luv.WhitePoint())
	for _, v := range luv.Components() {
		assert.False(t, math.IsNaN(v))
	}

	xyz := DefaultConverter().ToXYZ(NewLuv(0, 12, -7))
	assert.Equal(t, []float64{0, 0, 0}, xyz.Components())
}

func TestBlackDegenerateCases(t *testing.T) {
	conv := DefaultConverter()
	black := NewRGB(0, 0, 0)

	xyy := conv.ToXyY(black)
	d65 := WP_D65.Chromaticity()
	assert.Equal(t, []float64{d65.X, d65.Y, 0}, xyy.Components())

	assert.InDeltaSlice(t, []float64{0, 0, 0}, conv.ToLab(black).Components(), 1e-12)
	assert.Equal(t, []float64{0, 0, 0, 1}, conv.ToCMYK(black).Components())
	assert.Equal(t, []float64{0, 0, 0}, conv.ToHSV(black).Components())
	assert.Equal(t, []float64{0, 0, 0}, conv.ToHSL(black).Components())

	assert.Equal(t, WP_D50.Chromaticity(), conv.Chromaticity(NewLuvWithWhitePoint(0, 0, 0, WP_D50)))

	// y == 0 has no finite XYZ
	assert.Equal(t, []float64{0, 0, 0}, conv.ToXYZ(NewXyY(0.3, 0, 0.5)).Components())
}

func TestWhiteMapsToReferenceWhite(t *testing.T) {
	white := NewRGB(1, 1, 1)

	for _, tc := range []struct {
		name string
		conv *Converter
		wp   *Illuminant
	}{
		{name: "sRGB", conv: DefaultConverter(), wp: WP_D65},
		{name: "AdobeRGB", conv: NewConverterWith(WS_ADOBE_RGB, ADAPT_BRADFORD, nil), wp: WP_D65},
		{name: "ProPhotoRGB", conv: NewConverterWith(WS_PROPHOTO_RGB, ADAPT_BRADFORD, nil), wp: WP_D65},
		{name: "ProPhotoRGB adapted to D50", conv: NewConverterWith(WS_PROPHOTO_RGB, ADAPT_BRADFORD, WP_D50), wp: WP_D50},
		{name: "sRGB adapted to D50", conv: DefaultConverter().WithTargetWhitePoint(WP_D50), wp: WP_D50},
	} {
		t.Run(tc.name, func(t *testing.T) {
			xyz := tc.conv.ToXYZ(white)
			assert.Same(t, tc.wp, xyz.WhitePoint())
			if diff := cmp.Diff([]float64{tc.wp.X, tc.wp.Y, tc.wp.Z}, xyz.Components(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("white mismatch (-want +got):\n%s", diff)
			}

			for _, m := range []Model{MODEL_LUV, MODEL_LAB} {
				res := mustConvert(t, tc.conv, white, m)
				if diff := cmp.Diff([]float64{100, 0, 0}, res.Components(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
					t.Errorf("%v mismatch (-want +got):\n%s", m, diff)
				}
			}
		})
	}
}

func TestKnownValues(t *testing.T) {
	conv := DefaultConverter()

	for _, tc := range []struct {
		name     string
		src      Colour
		target   Model
		expected []float64
		delta    float64
	}{
		{name: "red to HSV", src: NewRGB(1, 0, 0), target: MODEL_HSV, expected: []float64{0, 1, 1}},
		{name: "green to HSL", src: NewRGB(0, 1, 0), target: MODEL_HSL, expected: []float64{120, 1, 0.5}},
		{name: "blue to CMYK", src: NewRGB(0, 0, 1), target: MODEL_CMYK, expected: []float64{1, 1, 0, 0}},
		{name: "grey to HSV", src: NewRGB(0.5, 0.5, 0.5), target: MODEL_HSV, expected: []float64{0, 0, 0.5}},
		{name: "magenta HSV to RGB", src: NewHSV(300, 1, 1), target: MODEL_RGB, expected: []float64{1, 0, 1}},
		{name: "HSL to CMYK", src: NewHSL(60, 1, 0.25), target: MODEL_CMYK, expected: []float64{0, 0, 1, 0.5}},
		{name: "hue wraps", src: NewHSV(480, 1, 1), target: MODEL_RGB, expected: []float64{0, 1, 0}},
		{name: "equal energy xyY", src: NewXYZ(0.5, 0.5, 0.5), target: MODEL_XYY, expected: []float64{1.0 / 3.0, 1.0 / 3.0, 0.5}, delta: 1e-15},
		{name: "sRGB red to XYZ", src: NewRGB(1, 0, 0), target: MODEL_XYZ, expected: []float64{0.4124564, 0.2126729, 0.0193339}, delta: 1e-6},
		{name: "sRGB red to Lab", src: NewRGB(1, 0, 0), target: MODEL_LAB, expected: []float64{53.2408, 80.0925, 67.2032}, delta: 1e-2},
		{name: "sRGB red to Luv", src: NewRGB(1, 0, 0), target: MODEL_LUV, expected: []float64{53.2408, 175.0151, 37.7564}, delta: 1e-2},
		{name: "mid grey to Lab", src: NewRGB(0.5, 0.5, 0.5), target: MODEL_LAB, expected: []float64{53.39, 0, 0}, delta: 1e-2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := mustConvert(t, conv, tc.src, tc.target)
			if diff := cmp.Diff(tc.expected, res.Components(), cmpopts.EquateApprox(0, tc.delta+1e-12)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// go-colorful is an independent sRGB/D65 implementation. Its XYZ matrix is
// derived slightly differently, so the tolerances reflect that rather than
// our own precision.
func TestAgainstColorful(t *testing.T) {
	conv := DefaultConverter()

	for _, rgb := range randomRGB(200) {
		ref := colorful.Color{R: rgb.R(), G: rgb.G(), B: rgb.B()}

		x, y, z := ref.Xyz()
		assert.InDeltaSlice(t, []float64{x, y, z}, conv.ToXYZ(rgb).Components(), 1e-3)

		l, a, b := ref.Lab()
		assert.InDeltaSlice(t, []float64{l * 100, a * 100, b * 100}, conv.ToLab(rgb).Components(), 0.1)

		l, u, v := ref.Luv()
		assert.InDeltaSlice(t, []float64{l * 100, u * 100, v * 100}, conv.ToLuv(rgb).Components(), 0.1)

		cx, cy, cY := ref.Xyy()
		assert.InDeltaSlice(t, []float64{cx, cy, cY}, conv.ToXyY(rgb).Components(), 1e-3)

		h, s, val := ref.Hsv()
		assert.InDeltaSlice(t, []float64{h, s, val}, conv.ToHSV(rgb).Components(), 1e-9)

		h, s, l = ref.Hsl()
		assert.InDeltaSlice(t, []float64{h, s, l}, conv.ToHSL(rgb).Components(), 1e-9)
	}
}

func TestSourceWhiteCarriesForward(t *testing.T) {
	conv := DefaultConverter()
	src := NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D50)

	for _, m := range []Model{MODEL_LUV, MODEL_LAB, MODEL_XYY, MODEL_LMS} {
		res := mustConvert(t, conv, src, m)
		assert.Same(t, WP_D50, res.(WhitePointer).WhitePoint(), m.String())

		back := conv.ToXYZ(res)
		assert.Same(t, WP_D50, back.WhitePoint())
		if diff := cmp.Diff(src.Components(), back.Components(), approx); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", m, diff)
		}
	}
}

func TestAdaptationChangesValue(t *testing.T) {
	toD65 := DefaultConverter().WithTargetWhitePoint(WP_D65)

	fromD50 := toD65.ToXYZ(NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D50))
	fromD65 := toD65.ToXYZ(NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D65))

	assert.Same(t, WP_D65, fromD50.WhitePoint())
	assert.Same(t, WP_D65, fromD65.WhitePoint())
	assert.Equal(t, []float64{0.3, 0.4, 0.2}, fromD65.Components())
	assert.NotEqual(t, fromD65.Components(), fromD50.Components())
	assert.False(t, fromD50.Equal(fromD65))

	luvD50 := toD65.ToLuv(NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D50))
	luvD65 := toD65.ToLuv(NewXYZWithWhitePoint(0.3, 0.4, 0.2, WP_D65))
	assert.Same(t, WP_D65, luvD50.WhitePoint())
	assert.Same(t, WP_D65, luvD65.WhitePoint())
	assert.NotEmpty(t, cmp.Diff(luvD65.Components(), luvD50.Components(), approx))

	// the same Lab numbers under a different white are a different colour
	labD50 := toD65.ToLab(NewLabWithWhitePoint(50, 20, -30, WP_D50))
	labD65 := toD65.ToLab(NewLabWithWhitePoint(50, 20, -30, WP_D65))
	assert.Same(t, WP_D65, labD50.WhitePoint())
	assert.Equal(t, []float64{50, 20, -30}, labD65.Components())
	assert.False(t, labD50.Equal(labD65))
}

func TestRGBFromForeignWhite(t *testing.T) {
	conv := DefaultConverter()

	// D50 white must come out as sRGB white after adaptation to D65
	rgb := conv.ToRGB(NewXYZWithWhitePoint(WP_D50.X, WP_D50.Y, WP_D50.Z, WP_D50))
	if diff := cmp.Diff([]float64{1, 1, 1}, rgb.Components(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	rgb = conv.ToRGB(NewLabWithWhitePoint(100, 0, 0, WP_A))
	if diff := cmp.Diff([]float64{1, 1, 1}, rgb.Components(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestChromaticityFollowsTargetWhite(t *testing.T) {
	src := NewXYZ(0.3, 0.4, 0.2)

	plain := DefaultConverter().Chromaticity(src)
	assert.Equal(t, src.Chromaticity(), plain)

	adapted := DefaultConverter().WithTargetWhitePoint(WP_D50)
	xy := adapted.Chromaticity(src)
	assert.Equal(t, adapted.ToXYZ(src).Chromaticity(), xy)
	assert.NotEqual(t, plain, xy)

	// neutral input lands on the target white
	xy = adapted.Chromaticity(NewRGB(0.5, 0.5, 0.5))
	assert.InDelta(t, WP_D50.Chromaticity().X, xy.X, 1e-12)
	assert.InDelta(t, WP_D50.Chromaticity().Y, xy.Y, 1e-12)
}

func TestWithTargetWhitePointCopies(t *testing.T) {
	base := DefaultConverter()
	adapted := base.WithTargetWhitePoint(WP_D50)

	assert.Nil(t, base.TargetWhitePoint())
	assert.Same(t, WP_D50, adapted.TargetWhitePoint())
	assert.Same(t, base.WorkingSpace(), adapted.WorkingSpace())
	assert.Equal(t, base.Adaptation(), adapted.Adaptation())

	lab := adapted.ToLab(NewRGB(0.2, 0.5, 0.7))
	assert.Same(t, WP_D50, lab.WhitePoint())
}

func TestConvertErrors(t *testing.T) {
	conv := DefaultConverter()

	_, err := conv.Convert(nil, MODEL_RGB)
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = conv.Convert(NewRGB(0, 0, 0), Model(77))
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestConvertSlice(t *testing.T) {
	conv := DefaultConverter()

	res, err := conv.ConvertSlice(MODEL_RGB, []float64{1, 0, 0}, nil, MODEL_HSV)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, res.Components())

	res, err = conv.ConvertSlice(MODEL_XYZ, []float64{0.3, 0.4, 0.2}, WP_D50, MODEL_LAB)
	require.NoError(t, err)
	assert.Same(t, WP_D50, res.(Lab).WhitePoint())

	for _, m := range MODELS {
		res, err = conv.ConvertSlice(m, []float64{0.5, 0.5}, nil, MODEL_XYZ)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Nil(t, res)
	}
}

func TestNewConverter(t *testing.T) {

	for _, tc := range []struct {
		name      string
		opt       *options.ConverterOptions
		ws        *RGBWorkingSpace
		method    AdaptationMethod
		target    *Illuminant
		expectErr error
	}{
		{name: "nil options", opt: nil, ws: WS_SRGB, method: ADAPT_BRADFORD},
		{name: "empty options", opt: &options.ConverterOptions{}, ws: WS_SRGB, method: ADAPT_BRADFORD},
		{
			name:   "everything set",
			opt:    &options.ConverterOptions{WorkingSpace: "adobergb", Adaptation: "cat02", TargetWhitePoint: "D50", Debug: true},
			ws:     WS_ADOBE_RGB,
			method: ADAPT_CAT02,
			target: WP_D50,
		},
		{name: "unknown working space", opt: &options.ConverterOptions{WorkingSpace: "scRGB"}, expectErr: ErrUnknownWorkingSpace},
		{name: "unknown adaptation", opt: &options.ConverterOptions{Adaptation: "Sharp"}, expectErr: ErrUnknownAdaptation},
		{name: "unknown white", opt: &options.ConverterOptions{TargetWhitePoint: "D93"}, expectErr: ErrUnknownIlluminant},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conv, err := NewConverter(tc.opt)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, conv)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tc.ws, conv.WorkingSpace())
			assert.Equal(t, tc.method, conv.Adaptation())
			assert.Same(t, tc.target, conv.TargetWhitePoint())
		})
	}
}

func TestConverterConcurrentUse(t *testing.T) {
	conv := DefaultConverter().WithTargetWhitePoint(WP_D50)
	samples := randomRGB(100)

	expected := make([]Lab, len(samples))
	for i, s := range samples {
		expected[i] = conv.ToLab(s)
	}

	var wg sync.WaitGroup
	results := make([][]Lab, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			res := make([]Lab, len(samples))
			for i, s := range samples {
				res[i] = conv.ToLab(s)
			}
			results[g] = res
		}(g)
	}
	wg.Wait()

	for _, res := range results {
		for i := range res {
			assert.True(t, expected[i].Equal(res[i]))
		}
	}
}
