// Package main is the entry point for the palettekit CLI, a tool for
// inspecting, converting, sorting, and searching palette files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/palettekit/internal/cli"
	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/config"
	_ "github.com/dshills/palettekit/internal/format"
	"github.com/dshills/palettekit/internal/palette"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("palettekit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger := cli.NewLogger(cli.ParseLogLevel(logLevel), os.Stderr)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return 2
	}

	var cmdErr error
	switch args[0] {
	case "show":
		cmdErr = cmdShow(args[1:], logger)
	case "convert":
		cmdErr = cmdConvert(args[1:], cfg, logger)
	case "sort":
		cmdErr = cmdSort(args[1:], cfg, logger)
	case "find":
		cmdErr = cmdFind(args[1:], logger)
	case "formats":
		cmdErr = cmdFormats()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		usage()
		return 2
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "palettekit - palette file toolkit\n\n")
	fmt.Fprintf(os.Stderr, "Usage: palettekit [options] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  show <file>                 Print a palette's colors\n")
	fmt.Fprintf(os.Stderr, "  convert <src> <dst>         Convert between palette formats\n")
	fmt.Fprintf(os.Stderr, "  sort [-order o] <file>      Sort a palette file in place\n")
	fmt.Fprintf(os.Stderr, "  find -color c <file>        Find a color's first index\n")
	fmt.Fprintf(os.Stderr, "  formats                     List supported formats\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  palettekit show theme.gpl\n")
	fmt.Fprintf(os.Stderr, "  palettekit convert theme.gpl theme.json\n")
	fmt.Fprintf(os.Stderr, "  palettekit sort -order brightness theme.pal\n")
	fmt.Fprintf(os.Stderr, "  palettekit find -color '#FF0000' theme.pal\n")
}

func cmdShow(args []string, logger *cli.Logger) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show: expected one palette file")
	}

	c, err := palette.OpenFile(fs.Arg(0))
	if err != nil {
		return err
	}
	logger.Debug("loaded %d colors from %s", c.Len(), fs.Arg(0))

	for i, v := range c.Values() {
		fmt.Printf("%3d  %s\n", i, v.Hex())
	}
	return nil
}

func cmdConvert(args []string, cfg config.Config, logger *cli.Logger) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	formatName := fs.String("format", "", "Target codec name (overrides destination extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("convert: expected source and destination files")
	}
	src, dst := fs.Arg(0), fs.Arg(1)

	c, err := palette.OpenFile(src)
	if err != nil {
		return err
	}

	var codec palette.Codec
	if *formatName != "" {
		if codec, err = palette.CodecByName(*formatName); err != nil {
			return err
		}
	}
	if codec == nil && !strings.Contains(dst, ".") {
		// Extensionless destination falls back to the configured format.
		if codec, err = palette.CodecByName(cfg.DefaultFormat); err != nil {
			return err
		}
	}

	if err := c.SaveFile(dst, codec); err != nil {
		return err
	}
	logger.Info("converted %s (%d colors) to %s", src, c.Len(), dst)
	return nil
}

func cmdSort(args []string, cfg config.Config, logger *cli.Logger) error {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	orderName := fs.String("order", "", "Sort order: brightness, hue, value")
	output := fs.String("o", "", "Output file (defaults to sorting in place)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("sort: expected one palette file")
	}
	path := fs.Arg(0)

	if *orderName == "" {
		*orderName = cfg.SortOrder
	}
	order, err := palette.ParseSortOrder(*orderName)
	if err != nil {
		return err
	}

	c, err := palette.OpenFile(path)
	if err != nil {
		return err
	}
	if err := c.Sort(order); err != nil {
		return err
	}

	target := *output
	if target == "" {
		target = path
	}
	if err := c.SaveFile(target, nil); err != nil {
		return err
	}
	logger.Info("sorted %s by %s into %s", path, order, target)
	return nil
}

func cmdFind(args []string, logger *cli.Logger) error {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	colorHex := fs.String("color", "", "Color to find, as a hex string")
	ignoreAlpha := fs.Bool("ignore-alpha", false, "Match on RGB channels only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("find: expected one palette file")
	}
	if *colorHex == "" {
		return fmt.Errorf("find: -color is required")
	}

	target, err := color.ParseHex(*colorHex)
	if err != nil {
		return err
	}

	c, err := palette.OpenFile(fs.Arg(0))
	if err != nil {
		return err
	}

	var index int
	if *ignoreAlpha {
		index = c.IndexOfIgnoreAlpha(target)
	} else {
		index = c.IndexOf(target)
	}

	if index < 0 {
		logger.Warn("%s not found in %s", target.Hex(), fs.Arg(0))
		fmt.Println(-1)
		return nil
	}
	fmt.Println(index)
	return nil
}

func cmdFormats() error {
	for _, name := range palette.CodecNames() {
		fmt.Println(name)
	}
	return nil
}
