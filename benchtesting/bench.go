package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kpfaulkner/colourwheel/colour"
	"github.com/kpfaulkner/colourwheel/options"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	count := flag.Int("n", 100000, "number of random colours per model pair")
	workingSpace := flag.String("ws", options.DEFAULT_WORKING_SPACE, "RGB working space")
	memProfile := flag.Bool("mem", false, "heap profile instead of CPU")
	flag.Parse()

	//p := profile.Start(profile.MemProfileRate(1), profile.ProfilePath("."))
	var p interface{ Stop() }
	if *memProfile {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	conv, err := colour.NewConverter(&options.ConverterOptions{WorkingSpace: *workingSpace})
	if err != nil {
		log.Fatalf("boomage %v", err)
	}

	r := rand.New(rand.NewPCG(1, 2))
	samples := make([]colour.RGB, *count)
	for i := range samples {
		samples[i] = colour.NewRGB(r.Float64(), r.Float64(), r.Float64())
	}

	start := time.Now()
	for _, from := range colour.MODELS {
		for _, to := range colour.MODELS {
			pairStart := time.Now()
			worst := 0.0
			for _, rgb := range samples {
				src, back, err := roundTrip(conv, rgb, from, to)
				if err != nil {
					log.Fatalf("boomage %v", err)
				}
				worst = math.Max(worst, maxDiff(src.Components(), back.Components()))
			}
			log.Infof("%s -> %s -> %s: %d ms, worst error %g", from, to, from, time.Since(pairStart).Milliseconds(), worst)
		}
	}
	fmt.Printf("converting total time %d ms\n", time.Since(start).Milliseconds())
}

// roundTrip converts rgb to from, then to, then back to from.
func roundTrip(conv *colour.Converter, rgb colour.RGB, from colour.Model, to colour.Model) (colour.Colour, colour.Colour, error) {
	src, err := conv.Convert(rgb, from)
	if err != nil {
		return nil, nil, err
	}
	via, err := conv.Convert(src, to)
	if err != nil {
		return nil, nil, err
	}
	back, err := conv.Convert(via, from)
	if err != nil {
		return nil, nil, err
	}
	return src, back, nil
}

func maxDiff(a []float64, b []float64) float64 {
	worst := 0.0
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}
	return worst
}
