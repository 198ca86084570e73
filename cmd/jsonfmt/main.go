// Command jsonfmt reformats JSON files and streams.
//
// With no arguments it reads stdin and pretty-prints to stdout. Arguments
// are file paths or glob patterns; each resolved file is reformatted
// independently, so a bad file never stops the rest of a batch.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"

	"pkt.systems/jsonfmt"
	"pkt.systems/jsonfmt/fileio"
	"pkt.systems/jsonfmt/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("jsonfmt", flag.ContinueOnError)
	flags.SetOutput(stderr)
	compact := flags.BoolP("compact", "c", false, "emit minified JSON")
	tab := flags.BoolP("tab", "t", false, "indent with tabs instead of spaces")
	size := flags.IntP("indent", "i", -1, "indent size per nesting level")
	palette := flags.String("palette", "", "color palette ("+strings.Join(jsonfmt.PaletteNames(), ", ")+")")
	noColor := flags.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	output := flags.StringP("output", "o", "", "write to file instead of stdout; {} expands to the item index")
	inPlace := flags.BoolP("write", "w", false, "rewrite each input file in place (implies --force)")
	force := flags.BoolP("force", "f", false, "overwrite existing output files")
	encodingName := flags.String("encoding", "", "file encoding: utf-8, utf-8-bom, utf-16le, utf-16be, latin-1")
	configPath := flags.String("config", "", "config file (jsonfmt.json or jsonfmt.yaml)")
	jobs := flags.IntP("jobs", "j", 0, "process up to N files concurrently")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jsonfmt [flags] [file|pattern ...]\n\nReads stdin when no files are given or when the file is \"-\".\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
		return 1
	}

	unit := jsonfmt.Space
	if *tab {
		unit = jsonfmt.Tab
	} else if !flags.Changed("tab") {
		if unit, err = jsonfmt.ParseIndentUnit(cfg.Indent); err != nil {
			fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
			return 2
		}
	}
	indent := jsonfmt.Indent{
		Unit: unit,
		Size: lo.Ternary(*size >= 0, *size, cfg.Size),
	}
	doCompact := *compact || (!flags.Changed("compact") && cfg.Compact)
	doForce := *force || *inPlace || cfg.Force
	enc, err := fileio.ParseEncoding(lo.Ternary(*encodingName != "", *encodingName, cfg.Encoding))
	if err != nil {
		fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
		return 2
	}

	// Color applies only to pretty terminal output, never to files.
	pal := jsonfmt.NoColorPalette()
	if !doCompact && *output == "" && !*inPlace {
		enable := !*noColor && isTerminal(stdout)
		name := lo.Ternary(*palette != "", *palette, cfg.Palette)
		if pal, err = jsonfmt.ResolvePalette(name, enable); err != nil {
			fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
			return 2
		}
	}

	patterns := flags.Args()
	if len(patterns) == 0 || (len(patterns) == 1 && patterns[0] == "-") {
		return runStdin(stdin, stdout, stderr, doCompact, indent, pal, *output, fileio.WriteOptions{
			Force:       doForce,
			Encoding:    enc,
			MakeParents: true,
		})
	}

	failed := 0
	var paths []string
	for _, pattern := range patterns {
		matches, err := fileio.ResolvePaths(pattern)
		if err != nil {
			fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
			failed++
			continue
		}
		paths = append(paths, matches...)
	}
	paths = lo.Uniq(paths)

	results := fileio.Process(context.Background(), paths, enc, lo.Ternary(*jobs > 0, *jobs, cfg.Jobs),
		func(doc fileio.Document) (string, error) {
			return jsonfmt.Format(doc.Text, doCompact, indent)
		})

	for i, res := range results {
		switch {
		case errors.Is(res.Err, jsonfmt.ErrEmptyInput):
			fmt.Fprintf(stderr, "jsonfmt: warning: %s: %v\n", res.Path, res.Err)
		case res.Err != nil:
			fmt.Fprintf(stderr, "jsonfmt: %s: %v\n", res.Path, res.Err)
			failed++
		case *inPlace:
			err := fileio.WriteText(res.Path, res.Output+"\n", fileio.WriteOptions{Force: true, Encoding: enc})
			if err != nil {
				fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
				failed++
			}
		case *output != "":
			target := fileio.ExpandTarget(*output, i)
			err := fileio.WriteText(target, res.Output+"\n", fileio.WriteOptions{
				Force:       doForce,
				Encoding:    enc,
				MakeParents: true,
			})
			if err != nil {
				fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
				failed++
			}
		default:
			fmt.Fprintln(stdout, jsonfmt.Colorize(res.Output, pal))
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func runStdin(stdin io.Reader, stdout, stderr io.Writer, compact bool, indent jsonfmt.Indent, pal jsonfmt.ColorPalette, output string, wopts fileio.WriteOptions) int {
	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "jsonfmt: read stdin: %v\n", err)
		return 1
	}
	out, err := jsonfmt.Format(data, compact, indent)
	switch {
	case errors.Is(err, jsonfmt.ErrEmptyInput):
		fmt.Fprintf(stderr, "jsonfmt: warning: stdin: %v\n", err)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "jsonfmt: stdin: %v\n", err)
		return 1
	}
	if output != "" {
		if err := fileio.WriteText(fileio.ExpandTarget(output, 0), out+"\n", wopts); err != nil {
			fmt.Fprintf(stderr, "jsonfmt: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprintln(stdout, jsonfmt.Colorize(out, pal))
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
