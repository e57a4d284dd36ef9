package blogen

import (
	"log/slog"
	"runtime"
	"time"
)

// AssetLoader defines the contract for loading templates and styles.
// Implementations may load from embedded assets, the filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a built-in CSS style by name (without extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without extension).
	LoadTemplate(name string) (string, error)
}

// Title policies for documents without a level-1 heading.
const (
	// TitlePolicyFilename synthesizes a title from the file name
	// ("my-first-post.md" becomes "My First Post") and logs a warning.
	TitlePolicyFilename = "filename"

	// TitlePolicySkip excludes the document from the run as a soft failure.
	TitlePolicySkip = "skip"
)

// DefaultBaseURL prefixes output file names in index links.
const DefaultBaseURL = "./"

// Worker bounds for the per-document stage.
const (
	MinWorkers = 1
	MaxWorkers = 8

	// cpuDivisor leaves headroom for filesystem I/O.
	cpuDivisor = 2
)

// Input contains the paths and settings for one run.
type Input struct {
	CSSPath   string // path to the CSS source file (required unless CSS is set)
	CSS       string // raw CSS content; takes precedence over CSSPath
	SourceDir string // directory of markdown files (required)
	OutputDir string // writable output directory (required)
	BaseURL   string // link prefix for the index (default "./")
}

// PageLink describes one successfully rendered page. The collection held
// by Result preserves the creation-time order of the source documents.
type PageLink struct {
	Title string // display title, free of markup artifacts
	URL   string // BaseURL + output file name
	Path  string // written file path
}

// SkippedDoc records one per-document soft failure.
type SkippedDoc struct {
	Path string
	Err  error
}

// Result is the outcome of one run.
type Result struct {
	Pages     []PageLink   // rendered pages in source order
	Skipped   []SkippedDoc // documents excluded from the run
	IndexPath string       // written index file path
}

// OrderKey produces the ordering timestamp for one source file.
// The default reads the file's birth time, falling back to mtime.
type OrderKey func(path string) (time.Time, error)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	workers     int
	titlePolicy string
	orderKey    OrderKey
}

// WithWorkers sets the number of documents converted and rendered in
// parallel. Zero selects an automatic size; see ResolveWorkers.
// A negative count is rejected by NewGenerator with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.cfg.workers = n
	}
}

// WithTitlePolicy selects the behavior for documents without a level-1
// heading: TitlePolicyFilename (default) or TitlePolicySkip.
func WithTitlePolicy(policy string) Option {
	return func(g *Generator) {
		g.cfg.titlePolicy = policy
	}
}

// WithOrderKey replaces the ordering strategy used to sort source
// documents. Useful on filesystems without reliable creation times.
func WithOrderKey(key OrderKey) Option {
	return func(g *Generator) {
		g.cfg.orderKey = key
	}
}

// WithLogger sets the logger for per-document diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithAssetLoader replaces the source of the page and index templates
// and built-in styles. Defaults to the embedded assets.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.assetLoader = loader
	}
}

// ResolveWorkers determines the per-document parallelism.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		if workers > MaxWorkers {
			return MaxWorkers
		}
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in main)
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// validTitlePolicy reports whether policy names a known title policy.
func validTitlePolicy(policy string) bool {
	switch policy {
	case TitlePolicyFilename, TitlePolicySkip:
		return true
	}
	return false
}
