package main

import (
	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the blogen CLI.
type buildFlags struct {
	cssSource   string
	mdSources   string
	outputs     string
	baseURL     string
	workers     int
	titlePolicy string
	config      string
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses CLI flags from args (args[0] is the program name).
func parseFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("blogen", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.cssSource, "css-source", "c", "", "CSS file path or built-in style name")
	fs.StringVarP(&f.mdSources, "md-sources", "m", "", "directory containing markdown source files")
	fs.StringVarP(&f.outputs, "rendered-outputs", "r", "", "directory for rendered HTML files")
	fs.StringVar(&f.baseURL, "base-url", "", "link prefix used in the index (default \"./\")")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.titlePolicy, "title-policy", "", "policy for documents without an H1: filename, skip")
	fs.StringVar(&f.config, "config", "", "YAML config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
