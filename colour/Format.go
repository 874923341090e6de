package colour

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// formatComponent rounds to two decimals and drops trailing zeros. The
// output does not depend on locale.
func formatComponent(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		// avoid "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatColour renders "Name [a=1, b=2, c=3]".
func formatColour(name string, labels []string, vals []float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" [")
	for i, label := range labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(label)
		sb.WriteByte('=')
		sb.WriteString(formatComponent(vals[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

func hashColour(model Model, vals []float64, wp *Illuminant) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v float64) {
		bits := canonicalBits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}

	h.Write([]byte{byte(model)})
	for _, v := range vals {
		write(v)
	}
	if wp != nil {
		write(wp.X)
		write(wp.Y)
		write(wp.Z)
	}
	return h.Sum64()
}

// canonicalBits maps values that compare equal to the same bits.
func canonicalBits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	if math.IsNaN(v) {
		return 0x7ff8000000000001
	}
	return math.Float64bits(v)
}
