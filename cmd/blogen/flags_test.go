package main

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - CLI flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("long flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"blogen",
			"--css-source", "style.css",
			"--md-sources", "posts",
			"--rendered-outputs", "public",
			"--base-url", "/blog/",
			"--workers", "4",
			"--title-policy", "skip",
			"--config", "blogen.yaml",
			"--quiet",
		})
		if err != nil {
			t.Fatalf("parseFlags() = %v, want nil", err)
		}
		if f.cssSource != "style.css" {
			t.Errorf("cssSource = %q, want style.css", f.cssSource)
		}
		if f.mdSources != "posts" {
			t.Errorf("mdSources = %q, want posts", f.mdSources)
		}
		if f.outputs != "public" {
			t.Errorf("outputs = %q, want public", f.outputs)
		}
		if f.baseURL != "/blog/" {
			t.Errorf("baseURL = %q, want /blog/", f.baseURL)
		}
		if f.workers != 4 {
			t.Errorf("workers = %d, want 4", f.workers)
		}
		if f.titlePolicy != "skip" {
			t.Errorf("titlePolicy = %q, want skip", f.titlePolicy)
		}
		if f.config != "blogen.yaml" {
			t.Errorf("config = %q, want blogen.yaml", f.config)
		}
		if !f.quiet {
			t.Error("quiet = false, want true")
		}
	})

	t.Run("short flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"blogen",
			"-c", "style.css", "-m", "posts", "-r", "public", "-w", "2", "-v",
		})
		if err != nil {
			t.Fatalf("parseFlags() = %v, want nil", err)
		}
		if f.cssSource != "style.css" || f.mdSources != "posts" || f.outputs != "public" {
			t.Errorf("paths = %q %q %q, want style.css posts public",
				f.cssSource, f.mdSources, f.outputs)
		}
		if f.workers != 2 {
			t.Errorf("workers = %d, want 2", f.workers)
		}
		if !f.verbose {
			t.Error("verbose = false, want true")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"blogen"})
		if err != nil {
			t.Fatalf("parseFlags() = %v, want nil", err)
		}
		if f.cssSource != "" || f.mdSources != "" || f.outputs != "" {
			t.Error("path flags not empty by default")
		}
		if f.workers != 0 {
			t.Errorf("workers = %d, want 0 (auto)", f.workers)
		}
		if f.quiet || f.verbose || f.version {
			t.Error("boolean flags not false by default")
		}
	})

	t.Run("version flag", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"blogen", "--version"})
		if err != nil {
			t.Fatal(err)
		}
		if !f.version {
			t.Error("version = false, want true")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"blogen", "--frobnicate"}); err == nil {
			t.Error("parseFlags(unknown flag) = nil, want error")
		}
	})
}
