package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/randomwalk/audio"
	"github.com/lixenwraith/randomwalk/render"
	"github.com/lixenwraith/randomwalk/sim"
)

var (
	width       = flag.Uint("width", 0, "plane width in cells (1-255, required)")
	height      = flag.Uint("height", 0, "plane height in cells (1-255, required)")
	particles   = flag.Uint("particles", 0, "number of particles (1-255, required)")
	probability = flag.Uint("probability", sim.DefaultProbability, "percent chance of a direction change per frame (0 uses the default)")
	delayMs     = flag.Uint("delay", 25, "frame delay in milliseconds (0 uses the default)")
	renderer    = flag.String("renderer", "tcell", "renderer: tcell or ansi")
	seed        = flag.Int64("seed", 0, "RNG seed (0 seeds from the clock)")
	sound       = flag.Bool("sound", false, "play a blip when particles leave the plane")
)

func usage() {
	fmt.Fprintf(os.Stdout, "Usage: %s -width W -height H -particles N [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stdout, "Walks N particles randomly across a WxH plane until all have left it.")
	fmt.Fprintln(os.Stdout, "\nOptions:")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

// parseConfig validates the CLI surface: required values present and every
// value within its unsigned range.
func parseConfig() (sim.Config, error) {
	if *width == 0 || *height == 0 {
		return sim.Config{}, sim.ErrInvalidDimension
	}
	if *particles == 0 {
		return sim.Config{}, sim.ErrInvalidCount
	}
	if *width > 255 || *height > 255 || *particles > 255 {
		return sim.Config{}, fmt.Errorf("width, height and particles must not exceed 255")
	}
	if *probability > sim.MaxProbability {
		return sim.Config{}, sim.ErrInvalidProbability
	}
	if *delayMs > 65535 {
		return sim.Config{}, fmt.Errorf("delay must not exceed 65535 ms")
	}
	return sim.Config{
		Width:       uint8(*width),
		Height:      uint8(*height),
		Count:       uint8(*particles),
		Probability: uint8(*probability),
		Delay:       time.Duration(*delayMs) * time.Millisecond,
	}, nil
}

func newSink(kind string) (render.Sink, error) {
	switch kind {
	case "ansi":
		return render.NewANSI(os.Stdout), nil
	case "tcell":
		return render.NewScreen()
	default:
		return nil, fmt.Errorf("unknown renderer %q", kind)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stdout, "error: %v\n\n", err)
		usage()
		os.Exit(2)
	}

	sink, err := newSink(*renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize renderer: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace so it is
	// readable after raw mode
	defer func() {
		if r := recover(); r != nil {
			sink.Fini()
			fmt.Fprintf(os.Stderr, "\nRANDOMWALK CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	eng, err := sim.NewEngine(cfg, sim.NewSource(*seed), sink)
	if err != nil {
		sink.Fini()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *sound {
		if player, err := audio.NewPlayer(); err != nil {
			log.Printf("audio unavailable: %v (continuing without sound)", err)
		} else {
			defer player.Close()
			eng.OnExit(func(int) { player.Blip() })
		}
	}

	runErr := eng.Run()
	sink.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "random walk failed: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("random walk complete: %d particles exited over %d frames\n", cfg.Count, eng.Frames())
}
