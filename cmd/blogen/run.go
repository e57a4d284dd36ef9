package main

import (
	"context"
	"fmt"
	"log/slog"

	blogen "github.com/alnah/go-blogen"
	"github.com/alnah/go-blogen/internal/config"
)

// run drives one CLI invocation: merge configuration, build the
// generator, run it, and report results.
func run(args []string, env *Environment) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintln(env.Stdout, "blogen "+Version)
		return nil
	}

	if flags.workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", blogen.ErrBadWorkers, flags.workers)
	}

	cfg, err := buildConfig(flags, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	gen, err := blogen.NewGenerator(
		blogen.WithWorkers(cfg.Workers),
		blogen.WithTitlePolicy(cfg.TitlePolicy),
		blogen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	result, err := gen.Generate(context.Background(), blogen.Input{
		CSSPath:   cfg.CSSSource,
		SourceDir: cfg.SourcesDir,
		OutputDir: cfg.OutputDir,
		BaseURL:   cfg.BaseURL,
	})
	if err != nil {
		return err
	}

	printResult(result, flags.quiet, flags.verbose, env)
	return nil
}

// buildConfig merges defaults, the optional config file, environment
// variables, and flags, in increasing precedence.
func buildConfig(flags *buildFlags, env *Environment) (*config.Config, error) {
	cfg := config.Default()

	configPath := flags.config
	if configPath == "" {
		configPath = env.Getenv(envConfig)
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnv(cfg, env.Getenv)

	if flags.cssSource != "" {
		cfg.CSSSource = flags.cssSource
	}
	if flags.mdSources != "" {
		cfg.SourcesDir = flags.mdSources
	}
	if flags.outputs != "" {
		cfg.OutputDir = flags.outputs
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.titlePolicy != "" {
		cfg.TitlePolicy = flags.titlePolicy
	}
	if flags.quiet {
		cfg.LogLevel = "error"
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// printResult outputs per-document outcomes and a summary.
// Skipped documents always go to stderr; the run still succeeds.
func printResult(result *blogen.Result, quiet, verbose bool, env *Environment) {
	for _, s := range result.Skipped {
		fmt.Fprintf(env.Stderr, "SKIPPED %s: %v\n", s.Path, s.Err)
	}

	if quiet {
		return
	}

	for _, p := range result.Pages {
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s)\n", p.Title, p.Path, p.URL)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", p.Path)
		}
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", result.IndexPath)

	fmt.Fprintf(env.Stdout, "\n%d pages rendered, %d skipped\n",
		len(result.Pages), len(result.Skipped))
}
