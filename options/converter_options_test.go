package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverterOptions(t *testing.T) {

	for _, tc := range []struct {
		name     string
		input    *ConverterOptions
		expected ConverterOptions
	}{
		{
			name:     "nil gives defaults",
			input:    nil,
			expected: ConverterOptions{WorkingSpace: "sRGB", Adaptation: "Bradford"},
		},
		{
			name:     "empty fields take defaults",
			input:    &ConverterOptions{TargetWhitePoint: "D50"},
			expected: ConverterOptions{WorkingSpace: "sRGB", Adaptation: "Bradford", TargetWhitePoint: "D50"},
		},
		{
			name:     "everything set",
			input:    &ConverterOptions{WorkingSpace: "AdobeRGB", Adaptation: "CAT02", TargetWhitePoint: "D65", Debug: true},
			expected: ConverterOptions{WorkingSpace: "AdobeRGB", Adaptation: "CAT02", TargetWhitePoint: "D65", Debug: true},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := NewConverterOptions(tc.input)
			assert.Equal(t, tc.expected, *opt)
		})
	}
}

func TestNewConverterOptionsDoesNotAlias(t *testing.T) {
	in := &ConverterOptions{WorkingSpace: "AdobeRGB"}
	opt := NewConverterOptions(in)
	opt.WorkingSpace = "sRGB"
	assert.Equal(t, "AdobeRGB", in.WorkingSpace)
}

func TestParseConverterOptions(t *testing.T) {

	for _, tc := range []struct {
		name      string
		data      string
		expected  ConverterOptions
		expectErr bool
	}{
		{
			name: "full",
			data: `
working_space = "ProPhotoRGB"
adaptation = "VonKries"
target_white_point = "D50"
debug = true
`,
			expected: ConverterOptions{WorkingSpace: "ProPhotoRGB", Adaptation: "VonKries", TargetWhitePoint: "D50", Debug: true},
		},
		{
			name:     "empty document",
			data:     "",
			expected: ConverterOptions{WorkingSpace: "sRGB", Adaptation: "Bradford"},
		},
		{
			name:      "broken toml",
			data:      `working_space = `,
			expectErr: true,
		},
		{
			name:      "wrong type",
			data:      `debug = "yes"`,
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt, err := ParseConverterOptions([]byte(tc.data))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *opt)
		})
	}
}

func TestLoadConverterOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colour.toml")
	require.NoError(t, os.WriteFile(path, []byte(`adaptation = "CAT02"`), 0666))

	opt, err := LoadConverterOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "CAT02", opt.Adaptation)
	assert.Equal(t, "sRGB", opt.WorkingSpace)

	_, err = LoadConverterOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
