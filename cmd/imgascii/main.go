package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/buger/goterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"imgascii/convert"
	"imgascii/render"
	"imgascii/source"
)

// ErrInvalidParameter marks a flag value that was given explicitly but is
// out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

func main() {
	var (
		width   = flag.Int("width", convert.DefaultWidth, "output width in characters (0 fits the terminal)")
		aspect  = flag.Float64("aspect", convert.DefaultAspect, "height correction for character cells (0 derives it from the terminal)")
		output  = flag.String("output", "", "also save the art to this file")
		timeout = flag.Duration("timeout", 30*time.Second, "URL fetch timeout")
	)
	flag.Usage = usage
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	src := flag.Arg(0)

	if err := run(os.Stdout, src, *width, *aspect, *timeout, *output); err != nil {
		log.Error().Err(err).Str("source", src).Msg("conversion failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "usage: imgascii [flags] <image path or URL>")
	flag.PrintDefaults()
}

func run(stdout io.Writer, src string, width int, aspect float64, timeout time.Duration, output string) error {
	if width < 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParameter, width)
	}
	if width == 0 {
		width = fitWidth()
	}
	if aspect < 0 {
		return fmt.Errorf("%w: aspect must be positive, got %v", ErrInvalidParameter, aspect)
	}
	if aspect == 0 {
		aspect = termAspect()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	img, err := source.Fetch(ctx, src)
	if err != nil {
		return err
	}

	art := convert.Convert(img, convert.Options{Width: width, Aspect: aspect})

	if err := emit(stdout, art, output); err != nil {
		return err
	}
	if output != "" {
		log.Info().Str("path", output).Msg("ascii art saved")
	}
	return nil
}

// fitWidth sizes the art to the current terminal; pipes fall back to the
// default width.
func fitWidth() int {
	if w := goterm.Width(); w > 0 {
		return w
	}
	return convert.DefaultWidth
}

func termAspect() float64 {
	ws, err := render.GetWinSize()
	if err != nil {
		return convert.DefaultAspect
	}
	return ws.AspectCorrection()
}
