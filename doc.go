// Package blogen renders a directory of Markdown documents into a static
// HTML site: one page per document plus an index page linking every
// generated page in creation-time order.
//
// # Quick Start
//
// Create a generator and run it against a source directory:
//
//	gen, err := blogen.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, blogen.Input{
//	    CSSPath:   "style.css",
//	    SourceDir: "posts",
//	    OutputDir: "public",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages, index at %s\n", len(result.Pages), result.IndexPath)
//
// # Rendering Pipeline
//
// A run proceeds through these stages:
//
//  1. Style loading (the CSS source file is read verbatim)
//  2. Source discovery (*.md files, ordered by creation time)
//  3. Per-document conversion via Goldmark (GFM, footnotes, smart
//     punctuation, syntax highlighting) and page rendering through
//     the page template
//  4. Index rendering from the accumulated page links
//
// Per-document failures (unreadable file, write error) are soft: the
// document is skipped, recorded in Result.Skipped, and the run continues.
// Configuration and template failures are fatal and abort the run.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := blogen.NewGenerator(
//	    blogen.WithWorkers(4),
//	    blogen.WithTitlePolicy(blogen.TitlePolicySkip),
//	    blogen.WithLogger(logger),
//	)
//
// Documents with no level-1 heading get a title synthesized from the
// file name by default; TitlePolicySkip excludes them instead.
//
// # Ordering
//
// Pages are ordered by file creation (birth) time where the filesystem
// reports one, falling back to modification time. The ordering key is
// injectable via WithOrderKey for filesystems with unreliable metadata.
package blogen
