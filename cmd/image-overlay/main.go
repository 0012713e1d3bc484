package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/imgtools/image-overlay/internal/compose"
	"github.com/imgtools/image-overlay/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	background string
	foreground string
	clipboard  bool
	output     string
	align      string
	margin     int
	zoom       string
	backdrop   string
}

// params holds the validated, typed parameter bundle handed to the
// composition pipeline.
type params struct {
	align    compose.Alignment
	margin   int
	zoom     compose.ZoomSpec
	backdrop color.NRGBA
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("image-overlay %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	// Logging goes to stderr; stdout carries the result summary.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	opts := parseFlags()

	p, err := opts.validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts, p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags() *options {
	opts := &options{}

	flag.StringVar(&opts.background, "background", "", "path to the background image file (wildcards supported)")
	flag.StringVar(&opts.background, "b", "", "shorthand for -background")
	flag.StringVar(&opts.foreground, "foreground", "", "path to the foreground image file (wildcards supported)")
	flag.StringVar(&opts.foreground, "f", "", "shorthand for -foreground")
	flag.BoolVar(&opts.clipboard, "clipboard", false, "use image from clipboard as foreground")
	flag.BoolVar(&opts.clipboard, "c", false, "shorthand for -clipboard")
	flag.StringVar(&opts.output, "output", "", "path to save the output image (wildcards supported in path)")
	flag.StringVar(&opts.output, "o", "", "shorthand for -output")
	flag.StringVar(&opts.align, "align", "center top", `alignment of the foreground as "HORIZONTAL VERTICAL"`)
	flag.IntVar(&opts.margin, "margin", 150, "margin in pixels from edges")
	flag.IntVar(&opts.margin, "m", 150, "shorthand for -margin")
	flag.StringVar(&opts.zoom, "zoom", "2.0", `zoom factor (e.g. 1.5), or the literal "width" to scale the foreground to the background width minus margins`)
	flag.StringVar(&opts.zoom, "z", "2.0", "shorthand for -zoom")
	flag.StringVar(&opts.backdrop, "backdrop", "#ffffff", "backdrop color used when flattening for formats without transparency")

	flag.Parse()
	return opts
}

func (o *options) validate() (*params, error) {
	if o.background == "" {
		return nil, fmt.Errorf("missing required -background")
	}
	if o.output == "" {
		return nil, fmt.Errorf("missing required -output")
	}
	if o.foreground == "" && !o.clipboard {
		return nil, fmt.Errorf("one of -foreground or -clipboard is required")
	}
	if o.foreground != "" && o.clipboard {
		return nil, fmt.Errorf("-foreground and -clipboard are mutually exclusive")
	}
	if o.margin < 0 {
		return nil, fmt.Errorf("margin must be non-negative")
	}

	align, err := parseAlignment(o.align)
	if err != nil {
		return nil, err
	}

	zoom, err := parseZoom(o.zoom)
	if err != nil {
		return nil, err
	}

	backdrop, err := compose.ParseBackdrop(o.backdrop)
	if err != nil {
		return nil, err
	}

	return &params{align: align, margin: o.margin, zoom: zoom, backdrop: backdrop}, nil
}

func parseAlignment(s string) (compose.Alignment, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return compose.Alignment{}, fmt.Errorf(`alignment must be "HORIZONTAL VERTICAL", got %q`, s)
	}

	h, err := compose.ParseHAlign(fields[0])
	if err != nil {
		return compose.Alignment{}, err
	}
	v, err := compose.ParseVAlign(fields[1])
	if err != nil {
		return compose.Alignment{}, err
	}
	return compose.Alignment{H: h, V: v}, nil
}

func parseZoom(s string) (compose.ZoomSpec, error) {
	if strings.EqualFold(s, "width") {
		return compose.FitToWidth(), nil
	}
	factor, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return compose.ZoomSpec{}, fmt.Errorf(`zoom must be a positive number or the literal "width"`)
	}
	if factor <= 0 {
		return compose.ZoomSpec{}, fmt.Errorf("zoom factor must be greater than 0")
	}
	return compose.FixedFactor(factor), nil
}

func run(opts *options, p *params) error {
	debug := os.Getenv("IMAGE_OVERLAY_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("image-overlay v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	background, bgPath, err := source.FromFile(opts.background)
	if err != nil {
		return err
	}

	var foreground image.Image
	fgLabel := "clipboard"
	if opts.clipboard {
		foreground, err = source.FromClipboard()
		if err != nil {
			return err
		}
	} else {
		foreground, fgLabel, err = source.FromFile(opts.foreground)
		if err != nil {
			return err
		}
	}

	if debug {
		bi := source.Describe(background, bgPath)
		fi := source.Describe(foreground, fgLabel)
		log.Printf("background: %dx%d %s alpha=%v", bi.Width, bi.Height, bi.Format, bi.HasAlpha)
		log.Printf("foreground: %dx%d %s alpha=%v", fi.Width, fi.Height, fi.Format, fi.HasAlpha)
	}

	outPath, err := resolveOutputPath(opts.output)
	if err != nil {
		return err
	}

	format, err := compose.FormatFromPath(outPath)
	if err != nil {
		return err
	}

	result := compose.Compose(background, foreground, p.align, p.margin, p.zoom)

	data, err := compose.EncodeBytes(result, format, p.backdrop)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output image: %w", err)
	}

	fmt.Printf("Successfully saved overlay image to: %s\n", outPath)
	fmt.Println("Image overlay completed successfully!")
	fmt.Println("Settings used:")
	fmt.Printf("  Background: %s\n", bgPath)
	fmt.Printf("  Foreground: %s\n", fgLabel)
	fmt.Printf("  Alignment: %s %s\n", p.align.H, p.align.V)
	fmt.Printf("  Margin: %dpx\n", p.margin)
	fmt.Printf("  Zoom: %sx\n", opts.zoom)
	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

// resolveOutputPath expands wildcard directory components and creates
// the output directory when it does not exist.
func resolveOutputPath(out string) (string, error) {
	dir := filepath.Dir(out)

	if strings.ContainsAny(dir, "*?[") {
		matches, err := filepath.Glob(dir)
		if err != nil {
			return "", fmt.Errorf("invalid output directory pattern %q: %w", dir, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("output directory not found: %s", dir)
		}
		dir = matches[0]
	} else if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return filepath.Join(dir, filepath.Base(out)), nil
}
