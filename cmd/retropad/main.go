// Package main is the entry point for the retropad headless driver.
// It loads a text file through the encoding gateway and runs search,
// replace, and conversion operations against it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/retropad/internal/config"
	"github.com/dshills/retropad/internal/gateway"
	"github.com/dshills/retropad/internal/session"
	"github.com/dshills/retropad/internal/textbuf"
	"github.com/dshills/retropad/internal/textenc"
	"github.com/dshills/retropad/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	showEncoding bool
	find         string
	matchCase    bool
	backward     bool
	from         int
	replace      string
	with         string
	convert      string
	configPath   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, path := parseFlags()

	settings, err := loadSettings(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	gw := gateway.New(vfs.NewOSFS())

	doc, err := gw.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	settings.AddRecent(doc.Path)
	saveSettings(opts.configPath, settings)

	switch {
	case opts.showEncoding:
		fmt.Println(doc.Encoding)
		return 0

	case opts.find != "":
		return runFind(doc, opts)

	case opts.replace != "":
		return runReplaceAll(gw, doc, opts)

	case opts.convert != "":
		return runConvert(gw, doc, opts.convert)
	}

	// No operation requested: report the document summary.
	point, lines := doc.Position()
	fmt.Printf("%s: %s, %s, %d code units, %d lines (Ln %d, Col %d)\n",
		doc.Name(), doc.Encoding, doc.LineEnding(), doc.Text.Len(), lines, point.Line, point.Column)
	return 0
}

func runFind(doc *session.Document, opts options) int {
	doc.Select(opts.from, opts.from)
	doc.SetFindPattern(textbuf.FromString(opts.find), opts.matchCase, !opts.backward)

	m, ok := doc.FindNext(false)
	if !ok {
		fmt.Fprintln(os.Stderr, "Cannot find the text.")
		return 1
	}

	point, _ := doc.Position()
	fmt.Printf("match at [%d,%d) Ln %d, Col %d\n", m.Start, m.End, point.Line, point.Column)
	return 0
}

func runReplaceAll(gw *gateway.Gateway, doc *session.Document, opts options) int {
	doc.SetFindPattern(textbuf.FromString(opts.replace), opts.matchCase, true)
	doc.SetReplaceWith(textbuf.FromString(opts.with))

	count := doc.ReplaceAll()
	fmt.Println(session.ReplaceAllSummary(count))

	if count == 0 {
		return 0
	}
	if err := gw.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runConvert(gw *gateway.Gateway, doc *session.Document, target string) int {
	tag, ok := textenc.ParseTag(target)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown encoding %q (use utf-8, utf-16le, utf-16be, ansi)\n", target)
		return 1
	}

	doc.Encoding = tag
	if err := gw.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Save may have relabeled the tag (utf-16be writes utf-8 bytes).
	fmt.Printf("saved %s as %s\n", doc.Name(), doc.Encoding)
	return 0
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

func saveSettings(path string, settings config.Settings) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return
		}
		path = defaultPath
	}
	// Settings persistence is best-effort; the operation result
	// matters more than the recent-file list.
	_ = config.Save(path, settings)
}

func parseFlags() (options, string) {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.showEncoding, "show-encoding", false, "Print the detected encoding and exit")
	flag.StringVar(&opts.find, "find", "", "Find text and print the match span")
	flag.BoolVar(&opts.matchCase, "match-case", false, "Match case exactly")
	flag.BoolVar(&opts.backward, "backward", false, "Search backward")
	flag.IntVar(&opts.from, "from", 0, "Code-unit offset to search from")
	flag.StringVar(&opts.replace, "replace", "", "Replace all occurrences of this text")
	flag.StringVar(&opts.with, "with", "", "Replacement text for -replace")
	flag.StringVar(&opts.convert, "convert", "", "Re-save the file as this encoding")
	flag.StringVar(&opts.configPath, "config", "", "Path to settings file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "retropad - plain text editor core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: retropad [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  retropad -show-encoding notes.txt\n")
		fmt.Fprintf(os.Stderr, "  retropad -find fox notes.txt\n")
		fmt.Fprintf(os.Stderr, "  retropad -replace fox -with owl notes.txt\n")
		fmt.Fprintf(os.Stderr, "  retropad -convert utf-16le notes.txt\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("retropad %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	return opts, flag.Arg(0)
}
