package blogen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-blogen/internal/assets"
	"github.com/alnah/go-blogen/internal/collector"
	"github.com/alnah/go-blogen/internal/fileutil"
	"github.com/alnah/go-blogen/internal/pipeline"
)

// IndexFileName is the landing page written into the output directory.
const IndexFileName = "index.html"

// filePermissions for written pages (rw-r--r--: sites are meant to be read).
const filePermissions = 0o644

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.DocumentConverter = (*pipeline.GoldmarkConverter)(nil)
	_ AssetLoader                = (*assets.EmbeddedLoader)(nil)
	_ AssetLoader                = (*assets.FilesystemLoader)(nil)
)

// Generator orchestrates the markdown-to-site rendering pipeline.
// Create with NewGenerator and run builds with Generate. A Generator is
// stateless across runs and safe for concurrent use.
type Generator struct {
	cfg           generatorConfig
	logger        *slog.Logger
	assetLoader   AssetLoader
	converter     pipeline.DocumentConverter
	pageRenderer  *pipeline.PageRenderer
	indexRenderer *pipeline.IndexRenderer
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithWorkers, WithTitlePolicy).
// Returns an error if template loading or parsing fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:         generatorConfig{titlePolicy: TitlePolicyFilename},
		logger:      slog.Default(),
		assetLoader: assets.NewEmbeddedLoader(),
		converter:   pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrBadWorkers, g.cfg.workers)
	}
	if !validTitlePolicy(g.cfg.titlePolicy) {
		return nil, fmt.Errorf("%w: %q", ErrBadPolicy, g.cfg.titlePolicy)
	}

	pageTmpl, err := g.assetLoader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}
	g.pageRenderer, err = pipeline.NewPageRenderer(pageTmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}

	indexTmpl, err := g.assetLoader.LoadTemplate(assets.IndexTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexTemplate, err)
	}
	g.indexRenderer, err = pipeline.NewIndexRenderer(indexTmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexTemplate, err)
	}

	return g, nil
}

// Generate runs one full build: load style, discover sources, convert
// and render every document, then render the index.
//
// Per-document failures are recorded in Result.Skipped and never abort
// the run; fatal conditions (unreadable CSS or source directory,
// unusable output directory, template failures, index write failure)
// return an error and leave no index behind.
func (g *Generator) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := g.validateInput(input); err != nil {
		return nil, err
	}

	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	style, err := g.loadStyle(input)
	if err != nil {
		return nil, err
	}

	if !fileutil.DirExists(input.OutputDir) {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrOutputDir, input.OutputDir)
	}

	docs, err := collector.New(collector.OrderKey(g.cfg.orderKey), g.logger).Discover(input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	// Per-document outcomes land at their discovery index, so completion
	// order under parallelism never affects index link order.
	type docOutcome struct {
		link *PageLink
		skip *SkippedDoc
	}
	outcomes := make([]docOutcome, len(docs))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(ResolveWorkers(g.cfg.workers))

	for i, doc := range docs {
		i, doc := i, doc
		grp.Go(func() error {
			link, skip, err := g.renderDocument(gctx, doc, style, input.OutputDir, baseURL)
			if err != nil {
				return err
			}
			outcomes[i] = docOutcome{link: link, skip: skip}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, o := range outcomes {
		if o.link != nil {
			result.Pages = append(result.Pages, *o.link)
		}
		if o.skip != nil {
			result.Skipped = append(result.Skipped, *o.skip)
		}
	}

	links := make([]pipeline.Link, len(result.Pages))
	for i, p := range result.Pages {
		links[i] = pipeline.Link{Title: p.Title, URL: p.URL}
	}

	indexHTML, err := g.indexRenderer.Render(links)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexTemplate, err)
	}

	indexPath := filepath.Join(input.OutputDir, IndexFileName)
	if err := fileutil.WriteFileAtomic(indexPath, []byte(indexHTML), filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteIndex, indexPath, err)
	}
	result.IndexPath = indexPath

	g.logger.Info("site generated",
		"index", indexPath,
		"pages", len(result.Pages),
		"skipped", len(result.Skipped))

	return result, nil
}

// renderDocument converts one source document and writes its page.
// A nil error with a non-nil skip records a soft failure; a non-nil
// error (template failure, cancellation) is fatal to the run.
func (g *Generator) renderDocument(ctx context.Context, doc collector.SourceDoc, style, outputDir, baseURL string) (*PageLink, *SkippedDoc, error) {
	content, err := os.ReadFile(doc.Path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, g.skip(doc.Path, fmt.Errorf("%w: %v", ErrReadMarkdown, err)), nil
	}

	frag, err := g.converter.Convert(ctx, string(content))
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, err
		}
		return nil, g.skip(doc.Path, fmt.Errorf("%w: %v", ErrConvert, err)), nil
	}

	title := frag.Title
	if title == "" {
		if g.cfg.titlePolicy == TitlePolicySkip {
			return nil, g.skip(doc.Path, ErrMissingTitle), nil
		}
		title = TitleFromFilename(doc.Name)
		g.logger.Warn("document has no level-1 heading; deriving title from file name",
			"path", doc.Path, "title", title)
	}

	page, err := g.pageRenderer.Render(style, frag.HTML)
	if err != nil {
		// Structural asset problem affecting all pages.
		return nil, nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}

	outName := strings.TrimSuffix(doc.Name, collector.MarkdownExt) + ".html"
	outPath := filepath.Join(outputDir, outName)
	if err := fileutil.WriteFileAtomic(outPath, []byte(page), filePermissions); err != nil {
		return nil, g.skip(doc.Path, fmt.Errorf("%w: %s: %v", ErrWritePage, outPath, err)), nil
	}

	g.logger.Debug("wrote page", "path", outPath, "title", title)
	return &PageLink{Title: title, URL: baseURL + outName, Path: outPath}, nil, nil
}

// skip logs a per-document soft failure and records it.
func (g *Generator) skip(path string, err error) *SkippedDoc {
	g.logger.Warn("skipping document", "path", path, "error", err)
	return &SkippedDoc{Path: path, Err: err}
}

// loadStyle resolves the style input to CSS content. Raw CSS takes
// precedence; otherwise CSSPath is treated as a file path when it looks
// like one, or as a built-in style name.
func (g *Generator) loadStyle(input Input) (string, error) {
	if input.CSS != "" {
		return input.CSS, nil
	}

	if !fileutil.IsFilePath(input.CSSPath) {
		css, err := g.assetLoader.LoadStyle(input.CSSPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return css, nil
	}

	content, err := os.ReadFile(input.CSSPath) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadCSS, input.CSSPath, err)
	}
	return string(content), nil
}

// validateInput checks that required fields are present.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their input validated earlier by
// Config.Validate at startup; both paths converge here.
func (g *Generator) validateInput(input Input) error {
	if input.CSS == "" && input.CSSPath == "" {
		return ErrNoCSS
	}
	if input.SourceDir == "" {
		return ErrNoSource
	}
	if input.OutputDir == "" {
		return ErrNoOutput
	}
	return nil
}

// TitleFromFilename synthesizes a display title from a file's base name:
// the extension is stripped, '-' and '_' become spaces, and each word is
// title-cased. "my-first-post.md" becomes "My First Post". A name with
// no words left after splitting (e.g. "---.md") titles as its raw base
// name so index links never end up with empty text.
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(base))
	if len(words) == 0 {
		if base != "" {
			return base
		}
		return name
	}

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
