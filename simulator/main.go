package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/rook-computer/lvconf/internal/display"
	"github.com/rook-computer/lvconf/internal/fonts"
	"github.com/rook-computer/lvconf/internal/logging"
	"github.com/rook-computer/lvconf/internal/lvconf"
	"github.com/rook-computer/lvconf/internal/render"
)

func main() {
	configPath := flag.String("config", "", "YAML overrides applied on top of the header or built-in defaults")
	headerPath := flag.String("header", "", "start from this lv_conf.h instead of the built-in defaults")
	outPath := flag.String("out", "testcard.png", "PNG file to write")
	width := flag.Int("width", render.DefaultWidth, "panel width in pixels")
	height := flag.Int("height", render.DefaultHeight, "panel height in pixels")
	raw := flag.Bool("raw", false, "skip color-depth quantization and write the RGBA card as drawn")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var logger logging.Logger = logging.NoopLogger{}
	if *verbose {
		logger = logging.NewFileLogger(os.Stderr)
	}

	if err := run(lvconf.Sources{Header: *headerPath, Overrides: *configPath}, *outPath, *width, *height, *raw, logger); err != nil {
		fmt.Fprintln(os.Stderr, "simulator error:", err)
		os.Exit(1)
	}
	fmt.Println("Test card written to", *outPath)
}

func run(src lvconf.Sources, outPath string, width, height int, raw bool, logger logging.Logger) error {
	set, duplicates, err := lvconf.Load(src)
	if err != nil {
		return err
	}
	for _, name := range duplicates {
		logger.Infof("lvconf", "dropped duplicate definition of %s", name)
	}

	reg, err := fonts.NewRegistry(set, nil, logger)
	if err != nil {
		return err
	}
	defer reg.Close()

	card, err := render.TestCard(set, reg, width, height)
	if err != nil {
		return err
	}
	logger.Infof("render", "drew %v", card.Drawn)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if raw {
		err = png.Encode(f, card.Image)
	} else {
		format := display.FormatOf(set)
		sim, serr := display.Simulate(card.Image, format)
		if serr != nil {
			_ = f.Close()
			return serr
		}
		logger.Infof("render", "quantized to %s", format)
		err = png.Encode(f, sim)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return f.Close()
}
